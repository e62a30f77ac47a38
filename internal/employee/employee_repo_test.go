package employee

import (
	"testing"

	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrder(t *testing.T) {
	t.Run("empty sort falls back to id desc", func(t *testing.T) {
		order, err := resolveOrder("", "")
		assert.NoError(t, err)
		assert.Equal(t, "employee.employee_id DESC", order)
	})

	t.Run("relation sort gets a primary key tie-break", func(t *testing.T) {
		order, err := resolveOrder("person.name", "asc")
		assert.NoError(t, err)
		assert.Equal(t, `"Person".name ASC, employee.employee_id ASC`, order)
	})

	t.Run("direction defaults to desc for unknown values", func(t *testing.T) {
		order, err := resolveOrder("createdAt", "sideways")
		assert.NoError(t, err)
		assert.Equal(t, "employee.created_at DESC, employee.employee_id ASC", order)
	})

	t.Run("unlisted field is rejected", func(t *testing.T) {
		_, err := resolveOrder("person.name; DROP TABLE employee", "asc")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSortField)
	})

	t.Run("raw column names are not accepted", func(t *testing.T) {
		_, err := resolveOrder("employee_id", "asc")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSortField)
	})
}
