package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostCommonEmergencyType(t *testing.T) {
	convs := []Conversation{
		{EmergencyType: "cardiac"},
		{EmergencyType: "allergy"},
		{EmergencyType: "cardiac"},
	}

	assert.Equal(t, "cardiac", MostCommonEmergencyType(convs))
}

func TestMostCommonEmergencyTypeTreatsMissingAsUnknown(t *testing.T) {
	convs := []Conversation{
		{EmergencyType: ""},
		{EmergencyType: ""},
		{EmergencyType: "burn"},
	}

	assert.Equal(t, "Unknown", MostCommonEmergencyType(convs))
}

func TestMostCommonEmergencyTypeTieGoesToFirstSeen(t *testing.T) {
	convs := []Conversation{
		{EmergencyType: "allergy"},
		{EmergencyType: "cardiac"},
		{EmergencyType: "cardiac"},
		{EmergencyType: "allergy"},
	}

	assert.Equal(t, "allergy", MostCommonEmergencyType(convs))
}

func TestMostCommonEmergencyTypeEmptyInput(t *testing.T) {
	assert.Equal(t, "Unknown", MostCommonEmergencyType(nil))
	assert.Equal(t, "Unknown", MostCommonEmergencyType([]Conversation{}))
}
