package content

// NextRecord returns the record following currentID in ascending id order,
// wrapping to the smallest id after the largest. When currentID is absent
// from the collection the smallest id is returned. Records must be sorted
// ascending by id, as produced by Load.
func NextRecord(records []Record, currentID int) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	for i, r := range records {
		if r.ID == currentID {
			return records[(i+1)%len(records)], true
		}
	}
	return records[0], true
}
