package jsonutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"name\": \"Rabat\"\n}", ToJSON(map[string]string{"name": "Rabat"}))
	assert.Equal(t, "", ToJSON(make(chan int)))
}
