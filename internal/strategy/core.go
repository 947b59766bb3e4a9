package strategy

// BucketPolicy holds the static allocation intent: bucket-level target
// fractions and within-bucket instrument weights.
type BucketPolicy struct {
	Targets map[string]float64            // bucket -> target fraction of the portfolio
	Weights map[string]map[string]float64 // bucket -> symbol -> within-bucket fraction
}

// BuildCoreTargets expands the bucket-level policy into flat per-instrument
// core weights: coreWeight = bucketTarget * withinBucketWeight.
//
// A bucket with a target but no within-bucket weights is skipped; its
// fraction stays unallocated. Instruments not covered by any bucket simply
// get no entry (treated as weight 0 downstream).
func BuildCoreTargets(policy BucketPolicy) map[string]float64 {
	core := make(map[string]float64)
	for bucket, target := range policy.Targets {
		within, ok := policy.Weights[bucket]
		if !ok {
			continue
		}
		for symbol, w := range within {
			core[symbol] = target * w
		}
	}
	return core
}
