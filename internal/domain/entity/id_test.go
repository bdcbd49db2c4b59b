package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/domain/entity"
)

func TestID_AceptaNumeroOString(t *testing.T) {
	var v struct {
		A entity.ID `json:"a"`
		B entity.ID `json:"b"`
		C entity.ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"c0ffee","c":null}`), &v))
	assert.Equal(t, entity.ID("12"), v.A)
	assert.Equal(t, entity.ID("c0ffee"), v.B)
	assert.Equal(t, entity.ID(""), v.C)
}

func TestID_MarshalConservaTipo(t *testing.T) {
	out, err := json.Marshal([]entity.ID{"7", "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `[7,"abc"]`, string(out))
}
