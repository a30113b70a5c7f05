package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDecodesNumbersAndStrings(t *testing.T) {
	var ps []Product
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"price":2},{"id":"a7f3","price":3},{"id":null}]`), &ps))

	assert.Equal(t, ID("1"), ps[0].ID)
	assert.Equal(t, ID("a7f3"), ps[1].ID)
	assert.Equal(t, ID(""), ps[2].ID)
}

func TestIDRejectsGarbage(t *testing.T) {
	var p Product
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &p))
}

func TestDisplayTitleFallsBackToName(t *testing.T) {
	assert.Equal(t, "Shirt", Product{Title: "Shirt", Name: "old"}.DisplayTitle())
	assert.Equal(t, "old", Product{Name: "old"}.DisplayTitle())
}

func TestSnapshotIsDeep(t *testing.T) {
	stock := 4
	p := Product{ID: "1", Stock: &stock, Colors: []string{"red"}}
	snap := p.Snapshot()

	*p.Stock = 0
	p.Colors[0] = "blue"

	assert.Equal(t, 4, *snap.Stock)
	assert.Equal(t, []string{"red"}, snap.Colors)
}

func TestPublicDropsPassword(t *testing.T) {
	u := User{Email: "a@b.c", Password: "Secret123"}
	assert.Empty(t, u.Public().Password)
	assert.Equal(t, "Secret123", u.Password)
}
