package commas

import "strconv"

// Int formats v with thousands separators, e.g. 12,345.
func Int(v int) string {
	s := strconv.Itoa(v)

	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}

	return sign + string(out)
}
