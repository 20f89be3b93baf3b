package linkstack

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// Balanced reports whether every bracket in text is closed by its matching
// bracket in the right order. Other characters are ignored.
func Balanced(text string) bool {
	open := New[rune]()
	defer open.Release()

	for _, r := range text {
		switch r {
		case '(', '[', '{':
			open.Push(r)
		case ')', ']', '}':
			top, ok := open.Pop().Get()
			if !ok || top != closers[r] {
				return false
			}
		}
	}

	return open.IsEmpty()
}
