package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/lineage/event"
	"github.com/arbores/lineage/internal/util"
)

func TestCodeTableIsBijective(t *testing.T) {
	seen := make(map[string]event.Kind, len(typeCodes))
	for kind, code := range typeCodes {
		assert.Len(t, code, 2, "code for %s must be two letters", kind)
		prev, dup := seen[code]
		assert.False(t, dup, "code %q maps both %s and %s", code, prev, kind)
		seen[code] = kind
	}
	assert.Equal(t, len(typeCodes), len(codeTypes))
}

func TestEncodeKnownType(t *testing.T) {
	e := event.Event{
		Kind:     event.KindMarriage,
		Date:     util.Ptr("20/07/1929"),
		PlaceKey: util.Ptr("Paris, Seine, France"),
		SpouseID: util.Ptr("@I2@"),
	}

	c := Encode(e)

	assert.Equal(t, "ma", c.Type)
	assert.Equal(t, 19290720, c.Date)
	assert.Equal(t, "Paris, Seine, France", c.Location)
	require.NotNil(t, c.Meta)
	assert.Equal(t, "@I2@", c.Meta.SpouseID)
}

func TestUnknownTypePassthrough(t *testing.T) {
	e := event.Event{Kind: event.Kind("unlisted-kind")}

	c := Encode(e)
	assert.Equal(t, "unlisted-kind", c.Type)

	back := Decode(c)
	assert.Equal(t, event.Kind("unlisted-kind"), back.Kind)
}

func TestMetaOmittedWhenEmpty(t *testing.T) {
	c := Encode(event.Event{Kind: event.KindBirth, Date: util.Ptr("1880")})
	assert.Nil(t, c.Meta)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"m"`)
	assert.NotContains(t, string(raw), `"l"`)
}

func TestOccupationMeta(t *testing.T) {
	e := event.Event{Kind: event.KindOccupation, Value: util.Ptr("Winemaker")}

	c := Encode(e)
	require.NotNil(t, c.Meta)
	assert.Equal(t, "Winemaker", c.Meta.Occupation)

	back := Decode(c)
	require.NotNil(t, back.Value)
	assert.Equal(t, "Winemaker", *back.Value)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		e    event.Event
	}{
		{
			name: "marriage with full date and extras",
			e: event.Event{
				Kind:     event.KindMarriage,
				Date:     util.Ptr("20/07/1929"),
				PlaceKey: util.Ptr("plc:paris"),
				SpouseID: util.Ptr("@I2@"),
			},
		},
		{
			name: "adoption with child",
			e: event.Event{
				Kind:    event.KindAdoption,
				Date:    util.Ptr("02/03/1871"),
				ChildID: util.Ptr("@I7@"),
			},
		},
		{
			name: "year-only date",
			e:    event.Event{Kind: event.KindDeath, Date: util.Ptr("1929")},
		},
		{
			name: "dateless event",
			e:    event.Event{Kind: event.KindBurial, PlaceKey: util.Ptr("plc:lyon")},
		},
		{
			name: "occupation with attendees",
			e: event.Event{
				Kind:      event.KindOccupation,
				Value:     util.Ptr("Notary"),
				Attendees: util.Ptr("Pierre Martin"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.e, Decode(Encode(tt.e)))
		})
	}
}

func TestJanuaryFirstCollapse(t *testing.T) {
	// A true January-1st full date compresses like a bare year and
	// comes back as one: the accepted lossy case.
	e := event.Event{Kind: event.KindBirth, Date: util.Ptr("01/01/1929")}

	back := Decode(Encode(e))
	require.NotNil(t, back.Date)
	assert.Equal(t, "1929", *back.Date)

	// Re-encoding the collapsed form is stable
	again := Decode(Encode(back))
	assert.Equal(t, back, again)
}

func TestWireShape(t *testing.T) {
	c := Encode(event.Event{
		Kind:     event.KindBirth,
		Date:     util.Ptr("05/11/1902"),
		PlaceKey: util.Ptr("plc:dijon"),
	})

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"bi","d":19021105,"l":"plc:dijon"}`, string(raw))

	var back CompactEvent
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, c, back)
}
