package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		key  Key
		want Actions
	}{
		{RuneKey('w'), Forward},
		{RuneKey('W'), Forward},
		{NamedKey("Up"), Forward},
		{RuneKey('s'), Backward},
		{NamedKey("left"), Left},
		{RuneKey('d'), Right},
		{NamedKey("esc"), Quit},
		{NamedKey("ctrl+c"), Quit},
		{RuneKey('x'), None},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Lookup(tt.key), "key %+v", tt.key)
	}
}

func TestNewKeymap_Errors(t *testing.T) {
	_, err := NewKeymap(map[string][]string{"jump": {"j"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")

	_, err = NewKeymap(map[string][]string{"forward": {"pgup"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestNewKeymap_AliasesAndSharedKeys(t *testing.T) {
	km, err := NewKeymap(map[string][]string{
		"forward": {"space"},
		"left":    {"space"},
	})
	require.NoError(t, err)
	assert.Equal(t, Forward|Left, km.Lookup(RuneKey(' ')))
}

func TestMerge(t *testing.T) {
	merged := Merge(DefaultBindings, map[string][]string{"forward": {"i"}})
	assert.Equal(t, []string{"i"}, merged["forward"])
	assert.Equal(t, DefaultBindings["backward"], merged["backward"])
	assert.Equal(t, []string{"w", "up"}, DefaultBindings["forward"])
}

func TestKeyState_HoldWindow(t *testing.T) {
	s := NewKeyState(DefaultKeymap(), 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.Equal(t, None, s.Poll(t0))

	s.Press(RuneKey('w'), t0)
	s.Press(NamedKey("left"), t0.Add(50*time.Millisecond))
	assert.Equal(t, Forward|Left, s.Poll(t0.Add(100*time.Millisecond)))
	assert.Equal(t, Left, s.Poll(t0.Add(101*time.Millisecond)))
	assert.Equal(t, None, s.Poll(t0.Add(time.Second)))

	// Unbound keys are ignored
	s.Press(RuneKey('z'), t0.Add(time.Second))
	assert.Equal(t, None, s.Poll(t0.Add(time.Second)))
}

func TestKeyState_FuturePressNotHeld(t *testing.T) {
	s := NewKeyState(DefaultKeymap(), 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	s.Press(RuneKey('w'), t0.Add(50*time.Millisecond))
	assert.Equal(t, None, s.Poll(t0))
	assert.Equal(t, Forward, s.Poll(t0.Add(50*time.Millisecond)))
}

func TestKeyState_QuitLatches(t *testing.T) {
	s := NewKeyState(DefaultKeymap(), 10*time.Millisecond)
	t0 := time.Unix(1000, 0)

	s.Press(RuneKey('q'), t0)
	assert.True(t, s.Poll(t0.Add(time.Hour)).Has(Quit))
}

func TestKeyState_Set(t *testing.T) {
	s := NewKeyState(DefaultKeymap(), 10*time.Millisecond)
	now := time.Unix(1000, 0)

	s.Set(Forward | Right)
	assert.Equal(t, Forward|Right, s.Poll(now))
	s.Set(None)
	assert.Equal(t, None, s.Poll(now))

	s.RequestQuit()
	assert.Equal(t, Quit, s.Poll(now))
}

func TestKeyState_ConcurrentPress(t *testing.T) {
	s := NewKeyState(DefaultKeymap(), time.Second)
	now := time.Unix(1000, 0)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.Press(RuneKey('w'), now)
		}
	}()
	for i := 0; i < 1000; i++ {
		s.Poll(now)
	}
	<-done
	assert.True(t, s.Poll(now).Has(Forward))
}

func TestActions_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "forward|right|quit", (Forward | Right | Quit).String())
	assert.Equal(t, Forward|Left, (Forward | Left | Quit).Movement())
	assert.False(t, Forward.Has(None))
}
