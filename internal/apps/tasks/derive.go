package tasks

// PartitionByCompletion splits tasks into incomplete and complete slices,
// each preserving the relative order of the input (which the service fetches
// in date_added descending order).
func PartitionByCompletion(items []Task) (active, completed []Task) {
	active = make([]Task, 0, len(items))
	completed = make([]Task, 0)
	for _, t := range items {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	return active, completed
}
