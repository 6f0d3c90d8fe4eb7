package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"qcscargo/pkg/domain"
)

func TestIDs_JSON(t *testing.T) {
	raw := uuid.MustParse("0b7f9a52-2f0e-4a44-9a5c-3f6d2b1e8c70")
	doc := domain.Document{
		ID:         domain.DocumentID(raw),
		CustomerID: domain.CustomerID(raw),
	}

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), `"id":"0b7f9a52-2f0e-4a44-9a5c-3f6d2b1e8c70"`)
	require.Contains(t, string(out), `"customerId":"0b7f9a52-2f0e-4a44-9a5c-3f6d2b1e8c70"`)
	require.NotContains(t, string(out), "packageId")

	var back domain.Document
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, doc.ID, back.ID)
	require.Equal(t, doc.CustomerID, back.CustomerID)
}

func TestParseUserID(t *testing.T) {
	id, err := domain.ParseUserID("0b7f9a52-2f0e-4a44-9a5c-3f6d2b1e8c70")
	require.NoError(t, err)
	require.Equal(t, "0b7f9a52-2f0e-4a44-9a5c-3f6d2b1e8c70", id.String())

	_, err = domain.ParseUserID("not-a-uuid")
	require.Error(t, err)

	var q domain.QuoteID
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &q))
}
