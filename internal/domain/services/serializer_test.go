package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

func TestSerializeValueScalars(t *testing.T) {
	assert.Equal(t, "", SerializeValue(nil))
	assert.Equal(t, "sim", SerializeValue(true))
	assert.Equal(t, "não", SerializeValue(false))
	assert.Equal(t, "42", SerializeValue(json.Number("42")))
	assert.Equal(t, "3.5", SerializeValue(json.Number("3.5")))
	assert.Equal(t, "texto", SerializeValue("  texto  "))
}

func TestSerializeValueList(t *testing.T) {
	v := mustDecode(t, `["um", "  dois  ", "", 3, null, {"nested":"x"}, [1,2], "quatro"]`)
	assert.Equal(t, "um, dois, 3, quatro", SerializeValue(v),
		"empty and non-scalar elements drop, order is kept")

	assert.Equal(t, "", SerializeValue([]any{}))
}

func TestSerializeValueMapping(t *testing.T) {
	v := mustDecode(t, `{"camera_style":"fixa","empty":"","som":["vento","chuva"],"detail":{"luz":"fria"}}`)
	assert.Equal(t, "camera style: fixa | som: vento, chuva | detail: luz: fria", SerializeValue(v))

	assert.Equal(t, "", SerializeValue(entities.NewRecord()))
}

func TestSerializeValueDeepNestingTerminates(t *testing.T) {
	raw := `{"a":{"b":{"c":{"d":{"e":{"f":"fundo"}}}}}}`
	assert.Equal(t, "a: b: c: d: e: f: fundo", SerializeValue(mustDecode(t, raw)))
}

func TestSerializeValueIsDeterministic(t *testing.T) {
	v := mustDecode(t, `{"b":1,"a":[true,false],"c":{"y":"sim?","x":2}}`)
	first := SerializeValue(v)
	require.NotEmpty(t, first)
	assert.Equal(t, first, SerializeValue(v))
}

func TestHumanizeAndTitle(t *testing.T) {
	assert.Equal(t, "cold open", humanizeKey("cold_open"))
	assert.Equal(t, "Cold open", titleCase(humanizeKey("cold_open")))
	assert.Equal(t, "", titleCase("  "))
	assert.Equal(t, "Época", titleCase("época"))
}
