package generator

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"unicode"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// scriptedSource returns pre-recorded values so tests can steer each draw.
// When the script runs out it keeps returning the last value.
type scriptedSource struct {
	ints   []int
	floats []float64
	calls  int
}

func (s *scriptedSource) IntN(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

// containsOnly reports whether every byte of s occurs in charset.
func containsOnly(s, charset string) bool {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(charset, rune(s[i])) {
			return false
		}
	}
	return true
}

// TestBuildCharset tests charset assembly and ambiguous-character stripping.
func TestBuildCharset(t *testing.T) {
	t.Parallel()

	t.Run("concatenates in fixed order", func(t *testing.T) {
		t.Parallel()
		got := BuildCharset(model.GenerationOptions{
			IncludeLowercase: true,
			IncludeUppercase: true,
			IncludeNumbers:   true,
			IncludeSymbols:   true,
		})
		if got != Lowercase+Uppercase+Digits+Symbols {
			t.Errorf("unexpected charset %q", got)
		}
	})

	t.Run("all flags false falls back to lowercase", func(t *testing.T) {
		t.Parallel()
		if got := BuildCharset(model.GenerationOptions{}); got != Lowercase {
			t.Errorf("expected lowercase fallback, got %q", got)
		}
	})

	t.Run("exclude ambiguous strips confusable characters", func(t *testing.T) {
		t.Parallel()
		got := BuildCharset(model.GenerationOptions{
			IncludeLowercase: true,
			IncludeUppercase: true,
			IncludeNumbers:   true,
			ExcludeAmbiguous: true,
		})
		for _, c := range "0OIl1" {
			if strings.ContainsRune(got, c) {
				t.Errorf("expected %q to be removed from %q", c, got)
			}
		}
		if len(got) != 26+26+10-5 {
			t.Errorf("expected %d characters, got %d", 26+26+10-5, len(got))
		}
	})

	t.Run("exclude ambiguous strips complex symbols", func(t *testing.T) {
		t.Parallel()
		got := BuildCharset(model.GenerationOptions{
			IncludeSymbols:   true,
			ExcludeAmbiguous: true,
		})
		if got != "!@#$%^&*()_-+=<>?" {
			t.Errorf("unexpected symbol charset %q", got)
		}
	})

	t.Run("numbers only with exclude ambiguous keeps 2-9", func(t *testing.T) {
		t.Parallel()
		got := BuildCharset(model.GenerationOptions{
			IncludeNumbers:   true,
			ExcludeAmbiguous: true,
		})
		if got != "23456789" {
			t.Errorf("expected 23456789, got %q", got)
		}
	})
}

// TestRandomPassword tests the random password generator.
func TestRandomPassword(t *testing.T) {
	t.Parallel()

	t.Run("lowercase only matches ^[a-z]{8}$", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`^[a-z]{8}$`)
		src := NewSeededSource(1, 2)
		for range 200 {
			pw := RandomPassword(src, model.GenerationOptions{Length: 8, IncludeLowercase: true})
			if !re.MatchString(pw) {
				t.Fatalf("password %q does not match %s", pw, re)
			}
		}
	})

	t.Run("length and charset hold for every flag combination", func(t *testing.T) {
		t.Parallel()
		src := NewSeededSource(42, 7)
		for mask := 0; mask < 64; mask++ {
			opts := model.GenerationOptions{
				Length:           1 + mask%40,
				IncludeLowercase: mask&1 != 0,
				IncludeUppercase: mask&2 != 0,
				IncludeNumbers:   mask&4 != 0,
				IncludeSymbols:   mask&8 != 0,
				ExcludeAmbiguous: mask&16 != 0,
				AvoidRepeating:   mask&32 != 0,
			}
			charset := BuildCharset(opts)
			pw := RandomPassword(src, opts)
			if len(pw) != opts.Length {
				t.Errorf("mask %d: expected length %d, got %d", mask, opts.Length, len(pw))
			}
			if !containsOnly(pw, charset) {
				t.Errorf("mask %d: password %q has characters outside %q", mask, pw, charset)
			}
		}
	})

	t.Run("all flags false still produces a password", func(t *testing.T) {
		t.Parallel()
		pw := RandomPassword(NewSeededSource(3, 4), model.GenerationOptions{Length: 12})
		if len(pw) != 12 || !containsOnly(pw, Lowercase) {
			t.Errorf("expected 12 lowercase characters, got %q", pw)
		}
	})

	t.Run("avoid repeating yields unique characters when the charset allows", func(t *testing.T) {
		t.Parallel()
		src := NewSeededSource(5, 6)
		opts := model.GenerationOptions{Length: 10, IncludeLowercase: true, IncludeUppercase: true, AvoidRepeating: true}
		for range 100 {
			pw := RandomPassword(src, opts)
			seen := make(map[rune]bool)
			for _, c := range pw {
				if seen[c] {
					t.Fatalf("unexpected repeat in %q", pw)
				}
				seen[c] = true
			}
		}
	})

	t.Run("avoid repeating gives up after 50 draws", func(t *testing.T) {
		t.Parallel()
		// A source that always returns index 0 makes every draw a repeat.
		src := &scriptedSource{ints: []int{0}}
		pw := RandomPassword(src, model.GenerationOptions{Length: 3, IncludeLowercase: true, AvoidRepeating: true})
		if pw != "aaa" {
			t.Errorf("expected repeats to be accepted, got %q", pw)
		}
		// First position draws once; the others exhaust the retry cap.
		if want := 1 + 2*MaxPasswordAttempts; src.calls != want {
			t.Errorf("expected %d draws, got %d", want, src.calls)
		}
	})

	t.Run("length beyond charset size still completes", func(t *testing.T) {
		t.Parallel()
		opts := model.GenerationOptions{Length: 30, IncludeNumbers: true, AvoidRepeating: true}
		pw := RandomPassword(NewSeededSource(8, 9), opts)
		if len(pw) != 30 || !containsOnly(pw, Digits) {
			t.Errorf("expected 30 digits, got %q", pw)
		}
	})

	t.Run("zero length yields empty string", func(t *testing.T) {
		t.Parallel()
		if pw := RandomPassword(nil, model.GenerationOptions{IncludeLowercase: true}); pw != "" {
			t.Errorf("expected empty password, got %q", pw)
		}
	})

	t.Run("pronounceable flag delegates", func(t *testing.T) {
		t.Parallel()
		opts := model.GenerationOptions{Length: 9, IncludeLowercase: true, UsePronounceable: true}
		pw := RandomPassword(NewSeededSource(10, 11), opts)
		if len(pw) != 9 || !containsOnly(pw, consonants+vowels) {
			t.Errorf("expected 9 pronounceable letters, got %q", pw)
		}
	})
}

// TestPronounceable tests the syllable-based generator.
func TestPronounceable(t *testing.T) {
	t.Parallel()

	t.Run("length holds regardless of flags", func(t *testing.T) {
		t.Parallel()
		src := NewSeededSource(12, 13)
		for length := 1; length <= 33; length++ {
			for mask := 0; mask < 8; mask++ {
				pw := Pronounceable(src, length, mask&1 != 0, mask&2 != 0, mask&4 != 0)
				if len(pw) != length {
					t.Fatalf("length %d mask %d: got %q", length, mask, pw)
				}
			}
		}
	})

	t.Run("without injections alternates consonants and vowels", func(t *testing.T) {
		t.Parallel()
		pw := Pronounceable(NewSeededSource(14, 15), 8, false, false, false)
		for i := 0; i < len(pw); i++ {
			set := consonants
			if i%2 == 1 {
				set = vowels
			}
			if !strings.ContainsRune(set, rune(pw[i])) {
				t.Errorf("position %d of %q: %q not in %q", i, pw, pw[i], set)
			}
		}
	})

	t.Run("odd length ends with a single letter", func(t *testing.T) {
		t.Parallel()
		pw := Pronounceable(NewSeededSource(16, 17), 7, false, false, false)
		if !strings.ContainsRune(consonants+vowels, rune(pw[6])) {
			t.Errorf("unexpected trailing character in %q", pw)
		}
	})

	t.Run("injections are applied in order", func(t *testing.T) {
		t.Parallel()
		// Draws: pair (b,a), pair (b,a), uppercase pos 0, digit pos 1 -> '7',
		// symbol pos 2 -> '!'.
		src := &scriptedSource{ints: []int{0, 0, 0, 0, 0, 1, 7, 2, 0}}
		pw := Pronounceable(src, 4, true, true, true)
		if pw != "B7!a" {
			t.Errorf("expected B7!a, got %q", pw)
		}
	})

	t.Run("injections may overwrite each other", func(t *testing.T) {
		t.Parallel()
		// Every injection targets position 0; the symbol wins.
		src := &scriptedSource{ints: []int{0, 0, 0, 0, 0, 0, 3, 0, 0}}
		pw := Pronounceable(src, 4, true, true, true)
		if pw != "!aba" {
			t.Errorf("expected !aba, got %q", pw)
		}
	})

	t.Run("zero length yields empty string", func(t *testing.T) {
		t.Parallel()
		if pw := Pronounceable(nil, 0, true, true, true); pw != "" {
			t.Errorf("expected empty string, got %q", pw)
		}
	})
}

// TestPIN tests the PIN generator.
func TestPIN(t *testing.T) {
	t.Parallel()

	t.Run("four digit PIN matches ^[0-9]{4}$", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`^[0-9]{4}$`)
		src := NewSeededSource(18, 19)
		for range 200 {
			if pin := PIN(src, 4, false); !re.MatchString(pin) {
				t.Fatalf("PIN %q does not match %s", pin, re)
			}
		}
	})

	t.Run("every length yields exactly N digits", func(t *testing.T) {
		t.Parallel()
		src := NewSeededSource(20, 21)
		for n := 1; n <= 32; n++ {
			pin := PIN(src, n, n%2 == 0)
			if len(pin) != n || !containsOnly(pin, Digits) {
				t.Errorf("length %d: got %q", n, pin)
			}
		}
	})

	t.Run("avoid repeating gives up after 20 draws", func(t *testing.T) {
		t.Parallel()
		src := &scriptedSource{ints: []int{4}}
		pin := PIN(src, 2, true)
		if pin != "44" {
			t.Errorf("expected 44, got %q", pin)
		}
		if want := 1 + MaxPINAttempts; src.calls != want {
			t.Errorf("expected %d draws, got %d", want, src.calls)
		}
	})

	t.Run("avoid repeating yields distinct digits up to ten", func(t *testing.T) {
		t.Parallel()
		src := NewSeededSource(22, 23)
		for range 50 {
			pin := PIN(src, 6, true)
			seen := make(map[rune]bool)
			for _, d := range pin {
				if seen[d] {
					// Possible but vanishingly rare with 20 draws per digit.
					t.Logf("repeat in %q", pin)
				}
				seen[d] = true
			}
		}
	})
}

// TestLeet tests the leet-speak transformer.
func TestLeet(t *testing.T) {
	t.Parallel()

	t.Run("empty string returns empty string", func(t *testing.T) {
		t.Parallel()
		if got := Leet(nil, ""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("text without letters is unchanged", func(t *testing.T) {
		t.Parallel()
		in := "12345 !?-_ 日本"
		if got := Leet(&scriptedSource{floats: []float64{0}}, in); got != in {
			t.Errorf("expected %q unchanged, got %q", in, got)
		}
	})

	t.Run("always converting uses the table", func(t *testing.T) {
		t.Parallel()
		got := Leet(&scriptedSource{floats: []float64{0}}, "Leet Speak")
		if got != "L337 5P3@K" {
			t.Errorf("expected L337 5P3@K, got %q", got)
		}
	})

	t.Run("never converting leaves text unchanged", func(t *testing.T) {
		t.Parallel()
		in := "Hello World"
		if got := Leet(&scriptedSource{floats: []float64{0.7}}, in); got != in {
			t.Errorf("expected %q, got %q", in, got)
		}
	})

	t.Run("every output character is the original or its substitute", func(t *testing.T) {
		t.Parallel()
		in := "The quick brown fox jumps over the lazy dog 0123"
		src := NewSeededSource(24, 25)
		for range 50 {
			out := []rune(Leet(src, in))
			orig := []rune(in)
			if len(out) != len(orig) {
				t.Fatalf("length changed: %q", string(out))
			}
			for i, r := range out {
				if r == orig[i] {
					continue
				}
				if sub, ok := LeetSubstitute(orig[i]); !ok || sub != r {
					t.Fatalf("position %d: %q is neither %q nor its substitute", i, r, orig[i])
				}
			}
		}
	})

	t.Run("table covers every letter", func(t *testing.T) {
		t.Parallel()
		for c := 'a'; c <= 'z'; c++ {
			if _, ok := LeetSubstitute(c); !ok {
				t.Errorf("missing substitute for %q", c)
			}
			if _, ok := LeetSubstitute(unicode.ToUpper(c)); !ok {
				t.Errorf("missing substitute for %q", unicode.ToUpper(c))
			}
		}
	})
}

// TestGenerate tests request dispatch and validation.
func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("random request", func(t *testing.T) {
		t.Parallel()
		got, err := Generate(NewSeededSource(26, 27), model.NewPasswordRequest(model.GenerationOptions{Length: 8, IncludeLowercase: true}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 8 {
			t.Errorf("expected 8 characters, got %q", got)
		}
	})

	t.Run("pin request", func(t *testing.T) {
		t.Parallel()
		got, err := Generate(nil, model.NewPINRequest(4, false))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^[0-9]{4}$`).MatchString(got) {
			t.Errorf("unexpected PIN %q", got)
		}
	})

	t.Run("leet request", func(t *testing.T) {
		t.Parallel()
		got, err := Generate(&scriptedSource{floats: []float64{0}}, model.NewLeetRequest("test"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "7357" {
			t.Errorf("expected 7357, got %q", got)
		}
	})

	t.Run("zero length returns ErrInvalidLength", func(t *testing.T) {
		t.Parallel()
		_, err := Generate(nil, model.NewPasswordRequest(model.GenerationOptions{IncludeLowercase: true}))
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength, got %v", err)
		}
	})

	t.Run("oversized PIN returns ErrInvalidLength", func(t *testing.T) {
		t.Parallel()
		_, err := Generate(nil, model.NewPINRequest(model.MaxLength+1, false))
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength, got %v", err)
		}
	})

	t.Run("empty text returns ErrEmptyText", func(t *testing.T) {
		t.Parallel()
		_, err := Generate(nil, model.NewLeetRequest(""))
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("unknown type returns ErrUnknownType", func(t *testing.T) {
		t.Parallel()
		_, err := Generate(nil, model.Request{Type: "vault"})
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("expected ErrUnknownType, got %v", err)
		}
	})
}
