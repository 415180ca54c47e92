package repositories

import (
	"fmt"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestLawyerSearchCriteria_Offset(t *testing.T) {
	assert.Equal(t, 0, LawyerSearchCriteria{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 24, LawyerSearchCriteria{Page: 3, Limit: 12}.Offset())
	assert.Equal(t, 0, LawyerSearchCriteria{Page: 0, Limit: 12}.Offset())
	assert.Equal(t, 0, LawyerSearchCriteria{Page: 2, Limit: 0}.Offset())
}

func TestLawyerSearchCriteria_OffsetDoesNotOverflow(t *testing.T) {
	offset := LawyerSearchCriteria{Page: 1 << 62, Limit: 12}.Offset()
	assert.Equal(t, math.MaxInt32, offset)
	assert.Positive(t, LawyerSearchCriteria{Page: 1_000_000, Limit: 100}.Offset())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%austin%", containsPattern("austin"))
	assert.Equal(t, `%100\%\_off\\%`, containsPattern(`100%_off\`))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("3f1c1f0e-8a6b-4c59-9d3f-2f1a4b5c6d7e"))
	assert.False(t, isUUID("not-a-uuid"))
	assert.False(t, isUUID(""))
}

func TestUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_lawyer_profiles_bar_number"}

	name, ok := uniqueViolation(fmt.Errorf("insert: %w", pgErr))
	assert.True(t, ok)
	assert.Equal(t, "idx_lawyer_profiles_bar_number", name)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(fmt.Errorf("plain"))
	assert.False(t, ok)
}
