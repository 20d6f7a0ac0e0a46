package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perfumanager/pos-api/pkg/textutil"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "pasion", textutil.Fold("Pasión"))
	assert.Equal(t, "nina", textutil.Fold("NIÑA"))
	assert.Equal(t, "sauvage edt", textutil.Fold("Sauvage EDT"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Lote Agosto Perfumería", "perfumeria"))
	assert.True(t, textutil.ContainsFold("Sauvage x3", "SAUVAGE"))
	assert.False(t, textutil.ContainsFold("Sauvage", "invictus"))
}
