package locale

import (
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "en"},
		{in: "en", want: "en"},
		{in: "fa", want: "fa"},
		{in: "fa-IR", want: "fa"},
		{in: "fa-IR,fa;q=0.9,en;q=0.8", want: "fa"},
		{in: "de", want: "en"},
		{in: "not a tag!!", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.in).String())
		})
	}
}

func TestTranslatorMessages(t *testing.T) {
	en, err := New("en", nil)
	require.NoError(t, err)
	fa, err := New("fa", nil)
	require.NoError(t, err)

	assert.Equal(t, "Data exhausted", en.StatusLabel(domain.StatusDataLimitReached))
	assert.Equal(t, "حجم تمام شده", fa.StatusLabel(domain.StatusDataLimitReached))
	assert.Equal(t, "Active", en.StatusLabel(""))
	assert.Equal(t, "Online", en.TagLabel(domain.TagOnline))
	assert.Equal(t, "clients: 3", en.T("clients.count", "Count==3"))
	assert.Equal(t, "۵ روز", fa.T("sub.days", "Days=="+fa.digits("5")))
}

func TestTranslatorFallsBackToKey(t *testing.T) {
	en, err := New("en", nil)
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", en.T("no.such.key"))
}

func TestTranslatorBytesUsesLocaleLabels(t *testing.T) {
	en, err := New("en", nil)
	require.NoError(t, err)
	fa, err := New("fa", nil)
	require.NoError(t, err)

	assert.Equal(t, "1.5 KB", en.Bytes(1536))
	assert.Equal(t, "۱.۵ کیلوبایت", fa.Bytes(1536))
	assert.Equal(t, domain.PersianSizeLabels, fa.SizeLabels())
}

func TestTranslatorNumber(t *testing.T) {
	en, err := New("en", nil)
	require.NoError(t, err)

	assert.Equal(t, "1,234,567", en.Number(1234567))
	assert.Equal(t, "150,000", en.Price(150000))
}
