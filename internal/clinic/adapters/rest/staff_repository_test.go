package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/adapters/rest"
	"clinicdesk/internal/clinic/domain/entities"
)

func TestRestStaffRepositoryGetAll(t *testing.T) {
	upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/staff", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode([]*entities.Staff{
			{StaffID: 1, Username: "admin", NameSurname: "Dr. Lee", Role: "Manager"},
			{StaffID: 2, Username: "nurse.joy", NameSurname: "Nurse Joy", Role: "Nurse"},
		})
		require.NoError(t, err)
	}))

	repo := rest.NewStaffRepository(upstream)
	members, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "admin", members[0].Username)
}

func TestRestStaffRepositoryFindByUsername(t *testing.T) {
	upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/staff/by-username/admin":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(&entities.Staff{StaffID: 1, Username: "admin", Role: "Manager"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	repo := rest.NewStaffRepository(upstream)
	ctx := context.Background()

	staff, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, int64(1), staff.StaffID)

	absent, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestRestStaffRepositoryGetByID(t *testing.T) {
	upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/staff/2":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(&entities.Staff{StaffID: 2, Username: "nurse.joy"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	repo := rest.NewStaffRepository(upstream)
	ctx := context.Background()

	staff, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, "nurse.joy", staff.Username)

	absent, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestRestStaffRepositoryCreate(t *testing.T) {
	t.Run("returns the persisted record with its id", func(t *testing.T) {
		upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/staff", r.URL.Path)

			var received entities.Staff
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Equal(t, "dr.gomez", received.Username)

			received.StaffID = 3
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&received)
		}))

		repo := rest.NewStaffRepository(upstream)
		created, err := repo.Create(context.Background(), &entities.Staff{Username: "dr.gomez"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), created.StaffID)
	})

	t.Run("upstream conflict surfaces as an HTTP error", func(t *testing.T) {
		upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"the selected username is already taken"}`))
		}))

		repo := rest.NewStaffRepository(upstream)
		_, err := repo.Create(context.Background(), &entities.Staff{Username: "admin"})

		require.Error(t, err)
		var httpErr *rest.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
		assert.Contains(t, httpErr.Body, "already taken")
	})
}

func TestRestStaffRepositoryUpdateNotFound(t *testing.T) {
	upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	repo := rest.NewStaffRepository(upstream)
	_, err := repo.Update(context.Background(), &entities.Staff{StaffID: 99})

	assert.ErrorIs(t, err, entities.ErrStaffNotFound)
}

func TestRestStaffRepositoryDelete(t *testing.T) {
	upstream := newUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		switch r.URL.Path {
		case "/staff/2":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	repo := rest.NewStaffRepository(upstream)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))
	assert.ErrorIs(t, repo.Delete(ctx, 99), entities.ErrStaffNotFound)

	var notSentinel *rest.HTTPError
	assert.False(t, errors.As(repo.Delete(ctx, 99), &notSentinel))
}
