package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcondori/api-saltenas/internal/domain/entity"
)

func TestFoldName_CaseInsensitive(t *testing.T) {
	assert.Equal(t, entity.FoldName("POLLO"), entity.FoldName("pollo"))
	assert.Equal(t, entity.FoldName("Pollo Picante"), entity.FoldName("POLLO PICANTE"))
}

func TestFoldName_NoEsSoloASCII(t *testing.T) {
	// Los sabores llevan tildes y eñes; el folding debe cubrirlos.
	assert.Equal(t, entity.FoldName("AJÍ"), entity.FoldName("ají"))
	assert.Equal(t, entity.FoldName("Salteña"), entity.FoldName("SALTEÑA"))
}

func TestFoldName_DistingueNombresDistintos(t *testing.T) {
	assert.NotEqual(t, entity.FoldName("Pollo"), entity.FoldName("Carne"))
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypePRODUCCION))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeVENTA))
	assert.False(t, entity.ValidMovementType("MERMA"))
	assert.False(t, entity.ValidMovementType("produccion"), "el tipo viaja en mayúsculas exactas")
	assert.False(t, entity.ValidMovementType(""))
}
