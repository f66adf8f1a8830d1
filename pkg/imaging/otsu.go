package imaging

// OtsuThreshold returns the intensity level that maximizes the between-class
// variance of the histogram's two populations:
//
//	variance(t) = weight_bg(t) * weight_fg(t) * (mean_bg(t) - mean_fg(t))^2
//
// where the background class covers bins [0,t] and the foreground class
// (t,255]. Ties break toward the smallest level. A histogram with all mass in
// one bin has no two-class split, so every candidate scores zero variance and
// the result stays 0.
//
// Pure function of the histogram; safe to call from any goroutine.
func OtsuThreshold(histo Histogram) uint8 {
	total := histo.Total()
	if total == 0 {
		return 0
	}

	var totalWeightedSum int
	for level, count := range histo {
		totalWeightedSum += level * count
	}

	var (
		bestThreshold uint8
		bestVariance  float64

		// Running population and weighted sum of the background class.
		bgCount       int
		bgWeightedSum int
	)
	for t, count := range histo {
		bgCount += count
		bgWeightedSum += t * count

		fgCount := total - bgCount
		fgWeightedSum := totalWeightedSum - bgWeightedSum

		// An empty class contributes zero variance; never a better split.
		if bgCount == 0 || fgCount == 0 {
			continue
		}

		bgWeight := float64(bgCount) / float64(total)
		fgWeight := float64(fgCount) / float64(total)
		bgMean := float64(bgWeightedSum) / float64(bgCount)
		fgMean := float64(fgWeightedSum) / float64(fgCount)

		meanDiff := bgMean - fgMean
		variance := bgWeight * fgWeight * meanDiff * meanDiff

		// Strict comparison keeps the smallest level among ties.
		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = uint8(t)
		}
	}

	return bestThreshold
}
