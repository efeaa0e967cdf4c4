package taxonomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEveryEntry(t *testing.T) {
	for _, e := range Entries() {
		t.Run(e.ID, func(t *testing.T) {
			byID, ok := Lookup(e.ID)
			require.True(t, ok)
			assert.Equal(t, e.Name, byID.Name)

			byName, ok := LookupName(e.Name)
			require.True(t, ok)
			assert.Equal(t, e.ID, byName.ID)
			assert.Equal(t, e.Type, byName.Type)
		})
	}
}

func TestFamilySizes(t *testing.T) {
	assert.Len(t, Health.All(), 39)
	assert.Len(t, Benefits.All(), 16)
	assert.Len(t, Other.All(), 1)
}

func TestLegacyAliases(t *testing.T) {
	dental, ok := Health.FromServiceID("dental")
	require.True(t, ok)
	legacyDental, ok := Health.FromServiceID(LegacyDentalID)
	require.True(t, ok)
	assert.Equal(t, dental, legacyDental)

	mental, ok := Health.FromServiceID("mentalHealth")
	require.True(t, ok)
	legacyMental, ok := Health.FromServiceID(LegacyMentalHealthID)
	require.True(t, ok)
	assert.Equal(t, mental, legacyMental)

	byName, err := Health.FromName("Dental")
	require.NoError(t, err)
	byLegacyName, err := Health.FromName(LegacyDentalName)
	require.NoError(t, err)
	assert.Equal(t, byName, byLegacyName)

	byName, err = Health.FromName("MentalHealth")
	require.NoError(t, err)
	byLegacyName, err = Health.FromName(LegacyMentalHealthName)
	require.NoError(t, err)
	assert.Equal(t, byName, byLegacyName)

	// Legacy ids resolve but are never emitted.
	assert.Equal(t, "dental", Dental.ServiceID())
	assert.Equal(t, "mentalHealth", MentalHealth.ServiceID())
}

func TestFromNameIsCaseInsensitive(t *testing.T) {
	v, err := Health.FromName("primarycare")
	require.NoError(t, err)
	assert.Equal(t, PrimaryCare, v)

	b, err := Benefits.FromName("EBENEFITSREGISTRATIONASSISTANCE")
	require.NoError(t, err)
	assert.Equal(t, EBenefitsRegistrationAssistance, b)
}

func TestFromNameUnknown(t *testing.T) {
	_, err := Health.FromName("Pensions")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownServiceName))
	assert.False(t, Health.IsRecognizedServiceName("Pensions"))
	assert.True(t, Benefits.IsRecognizedServiceName("pensions"))
}

func TestCovidAlternateName(t *testing.T) {
	assert.True(t, Health.IsRecognizedServiceName(Covid19VaccineAltName))
	v, err := Health.FromName("covid-19 VACCINES")
	require.NoError(t, err)
	assert.Equal(t, Covid19Vaccine, v)
	assert.Equal(t, Covid19VaccineID, v.ServiceID())
}

func TestServiceIDIsExact(t *testing.T) {
	assert.True(t, Health.IsRecognizedServiceID("urgentCare"))
	assert.False(t, Health.IsRecognizedServiceID("UrgentCare"))
	assert.False(t, IsRecognizedServiceID("foo"))
	assert.Equal(t, ServiceIDInvalid, Health.ServiceID(HealthService("Nope")))
}

func TestFamiliesAreDisjoint(t *testing.T) {
	seen := map[string]ServiceType{}
	for _, e := range Entries() {
		prev, dup := seen[e.ID]
		require.Falsef(t, dup, "id %s in %s and %s", e.ID, prev, e.Type)
		seen[e.ID] = e.Type
	}
}

func TestParseServiceType(t *testing.T) {
	for _, s := range []string{"health", "benefits", "other"} {
		st, err := ParseServiceType(s)
		require.NoError(t, err)
		assert.Equal(t, ServiceType(s), st)
	}
	for _, s := range []string{"Health", "bar", ""} {
		_, err := ParseServiceType(s)
		assert.ErrorIs(t, err, ErrUnknownServiceType)
	}
}

func TestRenamedServices(t *testing.T) {
	assert.True(t, Dental.IsRenamed())
	assert.True(t, MentalHealth.IsRenamed())
	assert.False(t, Cardiology.IsRenamed())
	assert.Equal(t, LegacyDentalName, Dental.LegacyName())
	assert.Equal(t, "Cardiology", Cardiology.LegacyName())
}
