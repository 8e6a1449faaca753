package roomapi

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetgrid/models/grid"
)

func useProjectResources(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)
}

func TestRoomApiClientMock_Fixtures(t *testing.T) {
	useProjectResources(t)
	client := NewRoomApiClientMock()
	ctx := context.Background()

	r, err := client.GetRoom(ctx, "my-room")
	require.NoError(t, err)
	assert.Equal(t, "my-room", r.RoomLink)
	assert.Equal(t, 3, r.NumUsers)

	sol, err := client.GetRoomSolution(ctx, "my-room")
	require.NoError(t, err)
	assert.NotEmpty(t, sol.Solution)

	hm, err := client.GetRoomHeatmap(ctx, "my-room")
	require.NoError(t, err)
	assert.Len(t, hm.NumAvailable, 7)

	m, err := client.GetUserTime(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, m.IsWellFormed())
}

func TestRoomApiClientMock_RegisterThenGet(t *testing.T) {
	client := NewRoomApiClientMock()
	ctx := context.Background()
	m := grid.NewPriorityMatrix()
	m[1][1] = 2

	require.NoError(t, client.RegisterUserTime(ctx, "u1", m))
	got, err := client.GetUserTime(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, m, got)

	require.NoError(t, client.DeleteUser(ctx, "u1"))
	useProjectResources(t)
	got, err = client.GetUserTime(ctx, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, m, got)
}

func TestRoomApiClientMock_MissingFixture(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())
	client := NewRoomApiClientMock()

	_, err := client.GetRoomSolution(context.Background(), "x")

	assert.Error(t, err)
}
