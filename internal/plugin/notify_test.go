package plugin_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrhook/internal/arr"
	"github.com/vmunix/arrhook/internal/plugin"
	"github.com/vmunix/arrhook/internal/plugin/mocks"
	"go.uber.org/mock/gomock"
)

func TestNotifier_RefreshCommands(t *testing.T) {
	tests := []struct {
		name string
		kind arr.Kind
		want arr.Command
	}{
		{name: "movie", kind: arr.Movie, want: arr.Command{Name: "RefreshMovie", MovieIDs: []int64{157}}},
		{name: "series", kind: arr.Series, want: arr.Command{Name: "RefreshSeries", SeriesID: 157}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockRefresher(ctrl)
			refresher.EXPECT().Command(gomock.Any(), tt.want).Return(&arr.CommandStatus{ID: 9, Status: "queued"}, nil)

			id := arr.Identity{EntityID: 157, Season: 1, Episode: 1, HasEpisode: true}
			n := plugin.NewNotifier(newBackend(t, tt.kind, "http://arr"), &staticResolver{id: id}, refresher,
				plugin.WithLogger(testLogger()))

			result, err := n.Run(context.Background(), plugin.Job{OriginalFile: "/media/a.mkv"})
			require.NoError(t, err)
			assert.Equal(t, plugin.OutputActed, result.Output)
			assert.Equal(t, plugin.NameNotify, result.Plugin)
			assert.Equal(t, "/media/a.mkv", result.File)
		})
	}
}

func TestNotifier_Unresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl) // no command expected

	n := plugin.NewNotifier(newBackend(t, arr.Movie, "http://arr"), &staticResolver{}, refresher,
		plugin.WithLogger(testLogger()))

	result, err := n.Run(context.Background(), plugin.Job{OriginalFile: "/media/a.mkv"})
	require.NoError(t, err)
	assert.Equal(t, plugin.OutputNotFound, result.Output)
}

func TestNotifier_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl)
	refresher.EXPECT().Command(gomock.Any(), gomock.Any()).Return(nil, arr.ErrUnauthorized)

	n := plugin.NewNotifier(newBackend(t, arr.Movie, "http://arr"), &staticResolver{id: arr.Identity{EntityID: 1}}, refresher,
		plugin.WithLogger(testLogger()))

	_, err := n.Run(context.Background(), plugin.Job{OriginalFile: "/media/a.mkv"})
	assert.ErrorIs(t, err, arr.ErrUnauthorized)
}

func TestNotifier_EndToEnd(t *testing.T) {
	var got map[string]any
	server := fakeArr(t, map[string]any{
		"/api/v3/movie/lookup": []arr.LookupItem{{ID: 157, Title: "Interstellar"}},
		"/api/v3/command": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":42,"name":"RefreshMovie","status":"queued"}`))
		}),
	})
	b, client, resolver := wire(t, arr.Movie, server)

	n := plugin.NewNotifier(b, resolver, client, plugin.WithLogger(testLogger()))
	result, err := n.Run(context.Background(), plugin.Job{
		OriginalFile: "/downloads/Interstellar (2014) {tmdb-157336}.mkv",
		CurrentFile:  "/movies/Interstellar (2014) [Bluray-1080p].mkv",
	})

	require.NoError(t, err)
	assert.Equal(t, plugin.OutputActed, result.Output)
	assert.Equal(t, "/movies/Interstellar (2014) [Bluray-1080p].mkv", result.File)
	assert.Equal(t, "RefreshMovie", got["name"])
	assert.Equal(t, []any{float64(157)}, got["movieIds"])
}

func TestOutput_String(t *testing.T) {
	assert.Equal(t, "acted", plugin.OutputActed.String())
	assert.Equal(t, "not_found", plugin.OutputNotFound.String())
	assert.Equal(t, "unknown", plugin.Output(0).String())
}
