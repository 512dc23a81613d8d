package suggestions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeHost struct {
	query      string
	loading    bool
	recipients []string
	loadingLog []bool
}

func (h *fakeHost) SetQuery(q string) { h.query = q }

func (h *fakeHost) SetLoading(l bool) {
	h.loading = l
	h.loadingLog = append(h.loadingLog, l)
}

func (h *fakeHost) AppendRecipient(a string) { h.recipients = append(h.recipients, a) }

func TestPresentSetsLoadingThenReveals(t *testing.T) {
	m := New(time.Millisecond)
	h := &fakeHost{}

	cmd := m.Present([]string{"alice@x.com"}, h)
	require.NotNil(t, cmd)
	assert.True(t, h.loading)
	assert.Equal(t, StateLoading, m.State())
	assert.Empty(t, m.View(), "nothing is shown before the delay elapses")

	m.Update(cmd(), h)

	assert.False(t, h.loading)
	assert.Equal(t, StateDisplayed, m.State())
	assert.Equal(t, []string{"alice@x.com"}, m.Displayed())
	assert.Contains(t, m.View(), "alice@x.com")
}

func TestStaleRevealIsDiscarded(t *testing.T) {
	m := New(0)
	h := &fakeHost{}

	first := m.Present([]string{"old@x.com"}, h)
	second := m.Present([]string{"new@x.com"}, h)

	// The newer reveal lands first, then the stale one arrives late.
	m.Update(second(), h)
	m.Update(first(), h)

	assert.Equal(t, []string{"new@x.com"}, m.Displayed())
	assert.False(t, h.loading)
}

func TestStaleRevealKeepsLoading(t *testing.T) {
	m := New(0)
	h := &fakeHost{}

	first := m.Present([]string{"old@x.com"}, h)
	m.Present([]string{"new@x.com"}, h)

	m.Update(first(), h)

	assert.True(t, h.loading, "a superseded reveal must not end the loading state")
	assert.Equal(t, StateLoading, m.State())
	assert.Empty(t, m.Displayed())
}

func TestPresentCopiesItems(t *testing.T) {
	m := New(0)
	h := &fakeHost{}
	items := []string{"a@x.com"}

	cmd := m.Present(items, h)
	items[0] = "mutated"
	m.Update(cmd(), h)

	assert.Equal(t, []string{"a@x.com"}, m.Displayed())
}

func TestEmptySetRendersNothing(t *testing.T) {
	m := New(0)
	h := &fakeHost{}

	cmd := m.Present([]string{}, h)
	m.Update(cmd(), h)

	assert.Equal(t, StateIdle, m.State())
	assert.Empty(t, m.View())
	assert.Equal(t, []bool{true, false}, h.loadingLog)
}

func TestSelect(t *testing.T) {
	m := New(0)
	h := &fakeHost{query: "ali"}
	m.Update(m.Present([]string{"alice@x.com", "alina@x.com"}, h)(), h)

	ok := m.Select(1, h)

	require.True(t, ok)
	assert.Equal(t, []string{"alina@x.com"}, h.recipients)
	assert.Equal(t, "", h.query)
	assert.Empty(t, m.Displayed())
	assert.Equal(t, StateIdle, m.State())
}

func TestSelectOutOfRange(t *testing.T) {
	m := New(0)
	h := &fakeHost{query: "x"}

	assert.False(t, m.Select(0, h))
	assert.False(t, m.Select(-1, h))
	assert.Empty(t, h.recipients)
	assert.Equal(t, "x", h.query)
}

func TestRowAt(t *testing.T) {
	m := New(0)
	m.SetWidth(30)
	h := &fakeHost{}
	m.Update(m.Present([]string{"a@x.com", "b@x.com"}, h)(), h)

	assert.Equal(t, -1, m.RowAt(5, 0), "top border")
	assert.Equal(t, 0, m.RowAt(5, 1))
	assert.Equal(t, 1, m.RowAt(5, 2))
	assert.Equal(t, -1, m.RowAt(5, 3), "bottom border")
	assert.Equal(t, -1, m.RowAt(0, 1), "left border")
	assert.Equal(t, -1, m.RowAt(29, 1), "right border")
}

func TestSetHoverClampsToRows(t *testing.T) {
	m := New(0)
	h := &fakeHost{}
	m.Update(m.Present([]string{"a@x.com"}, h)(), h)

	m.SetHover(0)
	assert.Equal(t, 0, m.hover)
	m.SetHover(5)
	assert.Equal(t, -1, m.hover)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "displayed", StateDisplayed.String())
}
