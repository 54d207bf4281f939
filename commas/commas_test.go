package commas

import "testing"

func TestInt(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-4096, "-4,096"},
	}

	for _, c := range cases {
		if got := Int(c.in); c.want != got {
			t.Errorf("%d: want %q got %q", c.in, c.want, got)
		}
	}
}
