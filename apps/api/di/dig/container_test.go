package dig_container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/masomo-calendar/apps/api/echo"
	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "TEST")

	c := New()
	err := c.Invoke(func(conf *core.Config, repo calendar.Repository, svc *calendar.Service, server *echoapi.Server) {
		assert.Equal(t, engineInMem, conf.Database.Engine)
		assert.NotNil(t, repo)
		assert.NotNil(t, svc)
		assert.NotNil(t, server)
	})
	require.NoError(t, err)
}
