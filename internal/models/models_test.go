package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/farm-backend/internal/validate"
)

func TestFarmValidate(t *testing.T) {
	f := Farm{Name: "Green Acres", SizeHectares: 12.5}
	require.NoError(t, f.Validate())
	assert.Equal(t, []string{}, f.Crops)

	bad := Farm{SizeHectares: -1}
	err := bad.Validate()
	var errs validate.Errs
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
}

func TestPlanValidate(t *testing.T) {
	p := Plan{Kind: PlanMarket, Title: "Q3 tomatoes"}
	require.NoError(t, p.Validate())
	assert.JSONEq(t, `{}`, string(p.Content))

	p = Plan{Kind: "forecast", Title: "x", Content: json.RawMessage(`"text"`)}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind: must be business or market")
	assert.Contains(t, err.Error(), "content: must be a JSON object")
}

func TestMessageValidate(t *testing.T) {
	m := Message{Room: "general", Body: "hello"}
	require.NoError(t, m.Validate())

	m.Body = strings.Repeat("a", MaxMessageLen+1)
	assert.Error(t, m.Validate())

	m = Message{Room: "general", Body: " "}
	assert.Error(t, m.Validate())
}
