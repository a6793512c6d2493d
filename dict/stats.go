package dict

import "unsafe"

// TableStats reports occupancy metrics for a dictionary.
type TableStats struct {
	Buckets      int // fixed number of buckets
	UsedBuckets  int // buckets with a non-empty chain
	Entries      int // number of entries in all chains
	LongestChain int // length of the longest chain
	ArenaPages   int // allocated arena pages
}

// FillRatio is the fraction of buckets holding at least one entry.
func (s TableStats) FillRatio() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.UsedBuckets) / float64(s.Buckets)
}

// LoadFactor is the average number of entries per bucket.
func (s TableStats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Buckets)
}

// Stats walks all chains and collects occupancy metrics.
func (d *Dictionary) Stats() TableStats {
	if d == nil {
		return TableStats{}
	}
	stats := TableStats{
		Buckets:    len(d.heads),
		ArenaPages: d.entries.pageCount(),
	}
	for _, h := range d.heads {
		if h == empty {
			continue
		}
		stats.UsedBuckets++
		n := 0
		for ; h != empty; h = d.entries.at(h).next {
			n++
		}
		stats.Entries += n
		stats.LongestChain = max(stats.LongestChain, n)
	}
	return stats
}

// Trace writes occupancy and memory statistics to the trace log.
func (d *Dictionary) Trace() {
	stats := d.Stats()
	tracer().Infof("Dictionary Statistics:")
	tracer().Infof("  Buckets:       %d", stats.Buckets)
	tracer().Infof("  Used buckets:  %d (%.1f%%)", stats.UsedBuckets, stats.FillRatio()*100)
	tracer().Infof("  Entries:       %d (load %.2f)", stats.Entries, stats.LoadFactor())
	tracer().Infof("  Longest chain: %d", stats.LongestChain)
	var memory uint64
	memory = uint64(stats.Buckets) * uint64(unsafe.Sizeof(empty))
	memory += uint64(stats.ArenaPages) * uint64(unsafe.Sizeof([pageSize]Entry{}))
	tracer().Infof("  Memory:        %d bytes (without word storage)", memory)
}
