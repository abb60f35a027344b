package telegram

// SameUser reports whether a and b are the same account. Only the ids are
// compared; names and usernames may change between updates.
func SameUser(a, b User) bool {
	return a.ID == b.ID
}

// SameSender reports whether two messages come from the same user.
// Messages without a sender never match.
func SameSender(a, b *Message) bool {
	if a == nil || b == nil || a.From == nil || b.From == nil {
		return false
	}
	return SameUser(*a.From, *b.From)
}

// DistinctUsers drops every user that is SameUser as an earlier one.
// Order of first occurrence is kept.
func DistinctUsers(users []User) []User {
	seen := make(map[int64]struct{}, len(users))
	out := make([]User, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}
