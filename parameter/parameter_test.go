package parameter

import "testing"

func TestKindFromRawMapsNumericFamilies(t *testing.T) {
	cases := []struct {
		raw  int32
		want Kind
	}{
		{0, KindInt},
		{1, KindInt},
		{2, KindInt},
		{3, KindFloat},
		{6, KindFloat},
		{7, KindString},
		{9, KindString},
		{25, KindButton},
		{42, KindOther},
		{-1, KindOther},
	}
	for _, c := range cases {
		if got := kindFromRaw(c.raw); got != c.want {
			t.Errorf("kindFromRaw(%d) = %v, want %v", c.raw, got, c.want)
		}
	}
}
