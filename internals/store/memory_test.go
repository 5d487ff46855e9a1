package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramadanku_backend/internals/constants"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

func TestSeededMemoryStoreBootstrap(t *testing.T) {
	s := NewSeededMemoryStore()

	snap, err := s.GetAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Mosques, 3)
	assert.Len(t, snap.Days, 30)
	assert.Equal(t, "d1", snap.Days[0].Code)
	assert.Equal(t, "d30", snap.Days[29].Code)
	assert.Empty(t, snap.Reports)

	// hash, bukan plaintext
	for _, m := range snap.Mosques {
		assert.NotContains(t, m.MosqueSupervisorPasswordHash, "pass")
	}
}

func TestMemoryCreateReportSetsIDAndPending(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	r := reportModel.NewBlankReport("d1", "m1", "أحمد")
	r.ReportStatus = constants.StatusApproved // klien tidak boleh menentukan status awal

	saved, err := s.CreateReport(ctx, r)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ReportID)
	assert.Equal(t, constants.StatusPending, saved.ReportStatus)
}

func TestMemoryCreateReportRejectsDuplicatePair(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	_, err := s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)

	_, err = s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m1", "سعد"))
	assert.ErrorIs(t, err, ErrDuplicateReport)

	// hari lain / masjid lain tetap boleh
	_, err = s.CreateReport(ctx, reportModel.NewBlankReport("d2", "m1", "أحمد"))
	assert.NoError(t, err)
	_, err = s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m2", "سعد"))
	assert.NoError(t, err)
}

func TestMemoryUpdateReport(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)

	saved.Prayer.MaleWorshippers = 99
	updated, err := s.UpdateReport(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, 99, updated.Prayer.MaleWorshippers)
	assert.Equal(t, saved.ReportCreatedAt, updated.ReportCreatedAt)

	ghost := reportModel.NewBlankReport("d1", "m1", "x")
	ghost.ReportID = "tidak-ada"
	_, err = s.UpdateReport(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateReportStatus(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)

	approved, err := s.UpdateReportStatus(ctx, saved.ReportID, constants.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, approved.ReportStatus)

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, snap.Reports[0].ReportStatus)

	_, err = s.UpdateReportStatus(ctx, "tidak-ada", constants.StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySnapshotIsACopy(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	_, err := s.CreateReport(ctx, reportModel.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)
	snap.Reports[0].Prayer.MaleWorshippers = 123456

	fresh, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Reports[0].Prayer.MaleWorshippers,
		"mutasi snapshot tidak boleh tembus ke store")
}

func TestMemoryCreateVolunteer(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := s.CreateVolunteer(ctx, &volunteerModel.VolunteerModel{
		VolunteerFullName:    "خالد بن أحمد",
		VolunteerPhoneNumber: "0500000000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.VolunteerID)

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Volunteers, 1)
}

func TestSnapshotFindReport(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	_, err := s.CreateReport(ctx, reportModel.NewBlankReport("d4", "m2", "أحمد"))
	require.NoError(t, err)

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)

	assert.NotNil(t, snap.FindReport("d4", "m2"))
	assert.Nil(t, snap.FindReport("d4", "m1"))
	assert.Nil(t, snap.FindReport("d5", "m2"))
}
