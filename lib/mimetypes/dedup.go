package mimetypes

// Dedup keeps the first record for each distinct extension and drops the
// rest, preserving source order.  Records with an empty extension are
// dropped too.
//
// If stats is non-nil, its EmptyExtensions, Duplicates, and Records counters
// are updated.
func Dedup(records []Record, stats *Stats) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))

	var empty, dupes int
	for _, rec := range records {
		if rec.Extension == "" {
			empty++
			continue
		}
		if _, found := seen[rec.Extension]; found {
			dupes++
			continue
		}
		seen[rec.Extension] = struct{}{}
		out = append(out, rec)
	}

	if stats != nil {
		stats.EmptyExtensions += empty
		stats.Duplicates += dupes
		stats.Records = len(out)
	}
	return out
}
