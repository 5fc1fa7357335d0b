package assistant

// MostCommonEmergencyType counts emergency types across conversations,
// treating a missing type as "Unknown". Ties go to the type seen first.
// No conversations at all is also "Unknown".
func MostCommonEmergencyType(convs []Conversation) string {
	if len(convs) == 0 {
		return "Unknown"
	}
	counts := map[string]int{}
	order := make([]string, 0, len(convs))
	for _, conv := range convs {
		t := conv.EmergencyType
		if t == "" {
			t = "Unknown"
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}
	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}
