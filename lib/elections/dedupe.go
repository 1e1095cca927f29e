package elections

// Deduplicate returns a new slice keeping the first record seen for each
// (location, election_date) key, preserving first-seen order. Fields are
// never merged between duplicates, the first write wins even when a later
// duplicate carries a populated r_plus.
func Deduplicate(records []Election) []Election {
	seen := make(map[recordKey]struct{}, len(records))
	unique := make([]Election, 0, len(records))

	for _, rec := range records {
		key := rec.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, rec)
	}

	return unique
}
