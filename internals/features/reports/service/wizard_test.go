package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramadanku_backend/internals/features/reports/dto"
	"ramadanku_backend/internals/features/reports/model"
	"ramadanku_backend/internals/store"
)

func newWizard(t *testing.T) (*WizardService, *store.MemoryStore) {
	t.Helper()
	st := store.NewSeededMemoryStore()
	return NewWizardService(st), st
}

func TestWizardHappyPathTwoCategories(t *testing.T) {
	w, st := newWizard(t)
	ctx := context.Background()

	sess := w.Start("أحمد")
	assert.Equal(t, StateSelectDay, sess.State)

	sess, err := w.SelectDay(sess.SessionID, "d1")
	require.NoError(t, err)
	assert.Equal(t, StateSelectMosque, sess.State)

	sess, err = w.SelectMosque(ctx, sess.SessionID, "m1")
	require.NoError(t, err)
	assert.Equal(t, StateSelectCategory, sess.State)
	require.NotNil(t, sess.Working)
	assert.Empty(t, sess.Working.ReportID, "record baru belum punya id")

	// kategori pertama: sholat
	sess, err = w.SelectCategory(sess.SessionID, "prayer")
	require.NoError(t, err)
	assert.Equal(t, StateEditFields, sess.State)

	sess, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		Prayer: &model.PrayerStats{MaleWorshippers: 100, FemaleWorshippers: 50},
	})
	require.NoError(t, err)
	assert.Equal(t, StateSelectCategory, sess.State)
	assert.NotEmpty(t, sess.Working.ReportID, "setelah submit pertama record sudah punya id")

	// kategori kedua: iftar, di record yang sama
	sess, err = w.SelectCategory(sess.SessionID, "iftar")
	require.NoError(t, err)
	sess, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		Iftar: &model.IftarStats{IftarMealsActual: 200},
	})
	require.NoError(t, err)

	// store harus punya SATU record dengan nilai kedua kategori
	snap, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Reports, 1)
	r := snap.Reports[0]
	assert.Equal(t, 100, r.Prayer.MaleWorshippers)
	assert.Equal(t, 50, r.Prayer.FemaleWorshippers)
	assert.Equal(t, 200, r.Iftar.IftarMealsActual)
	assert.Equal(t, "أحمد", r.ReportSupervisorName)

	_, err = w.Finish(sess.SessionID)
	require.NoError(t, err)
	_, err = w.Session(sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizardReloadsExistingRecord(t *testing.T) {
	w, _ := newWizard(t)
	ctx := context.Background()

	// sesi pertama mengisi prayer
	sess := w.Start("أحمد")
	sess, err := w.SelectDay(sess.SessionID, "d2")
	require.NoError(t, err)
	_, err = w.SelectMosque(ctx, sess.SessionID, "m1")
	require.NoError(t, err)
	_, err = w.SelectCategory(sess.SessionID, "prayer")
	require.NoError(t, err)
	_, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		Prayer: &model.PrayerStats{MaleWorshippers: 77},
	})
	require.NoError(t, err)

	// sesi kedua (mis. setelah restart UI) memilih pasangan yang sama
	sess2 := w.Start("سعد")
	sess2, err = w.SelectDay(sess2.SessionID, "d2")
	require.NoError(t, err)
	sess2, err = w.SelectMosque(ctx, sess2.SessionID, "m1")
	require.NoError(t, err)

	require.NotNil(t, sess2.Working)
	assert.NotEmpty(t, sess2.Working.ReportID)
	assert.Equal(t, 77, sess2.Working.Prayer.MaleWorshippers,
		"working copy harus memuat data yang sudah tersimpan")
}

func TestWizardSwitchingDayDiscardsSilently(t *testing.T) {
	w, st := newWizard(t)
	ctx := context.Background()

	sess := w.Start("أحمد")
	_, err := w.SelectDay(sess.SessionID, "d1")
	require.NoError(t, err)
	_, err = w.SelectMosque(ctx, sess.SessionID, "m1")
	require.NoError(t, err)
	_, err = w.SelectCategory(sess.SessionID, "prayer")
	require.NoError(t, err)

	// ganti hari di tengah edit: tanpa error, tanpa persist
	sess, err = w.SelectDay(sess.SessionID, "d9")
	require.NoError(t, err)
	assert.Equal(t, StateSelectMosque, sess.State)
	assert.Nil(t, sess.Working)
	assert.Empty(t, sess.MosqueID)

	snap, err := st.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Reports, "tidak boleh ada record yang tersimpan")
}

func TestWizardCancelKeepsSavedFields(t *testing.T) {
	w, st := newWizard(t)
	ctx := context.Background()

	sess := w.Start("أحمد")
	_, err := w.SelectDay(sess.SessionID, "d1")
	require.NoError(t, err)
	_, err = w.SelectMosque(ctx, sess.SessionID, "m1")
	require.NoError(t, err)
	_, err = w.SelectCategory(sess.SessionID, "water")
	require.NoError(t, err)
	_, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		Water: &model.WaterStats{WaterCartons: 7},
	})
	require.NoError(t, err)

	// buka kategori lain lalu batal
	_, err = w.SelectCategory(sess.SessionID, "iftar")
	require.NoError(t, err)
	sess, err = w.CancelCategory(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectCategory, sess.State)

	snap, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Reports, 1)
	assert.Equal(t, 7, snap.Reports[0].Water.WaterCartons)
	assert.Equal(t, 0, snap.Reports[0].Iftar.IftarMealsActual)
}

func TestWizardTransitionGuards(t *testing.T) {
	w, _ := newWizard(t)
	ctx := context.Background()

	sess := w.Start("أحمد")

	// belum pilih hari → pilih masjid ditolak
	_, err := w.SelectMosque(ctx, sess.SessionID, "m1")
	assert.ErrorIs(t, err, ErrWrongState)

	// hari tidak dikenal
	_, err = w.SelectDay(sess.SessionID, "d99")
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = w.SelectDay(sess.SessionID, "d1")
	require.NoError(t, err)

	// masjid tidak dikenal
	_, err = w.SelectMosque(ctx, sess.SessionID, "masjid-hantu")
	assert.ErrorIs(t, err, ErrUnknownMosque)

	_, err = w.SelectMosque(ctx, sess.SessionID, "m1")
	require.NoError(t, err)

	// kategori tidak dikenal
	_, err = w.SelectCategory(sess.SessionID, "parkir")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// submit tanpa membuka kategori
	_, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{})
	assert.ErrorIs(t, err, ErrWrongState)

	// submit dengan payload kategori yang salah
	_, err = w.SelectCategory(sess.SessionID, "prayer")
	require.NoError(t, err)
	_, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		Iftar: &model.IftarStats{IftarMealsActual: 10},
	})
	assert.ErrorIs(t, err, ErrCategoryMismatch)

	// sesi tidak dikenal
	_, err = w.SelectDay("sesi-hantu", "d1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizardNotesApplyWithAnyCategory(t *testing.T) {
	w, st := newWizard(t)
	ctx := context.Background()

	sess := w.Start("أحمد")
	_, err := w.SelectDay(sess.SessionID, "d1")
	require.NoError(t, err)
	_, err = w.SelectMosque(ctx, sess.SessionID, "m2")
	require.NoError(t, err)
	_, err = w.SelectCategory(sess.SessionID, "general")
	require.NoError(t, err)

	notes := "نحتاج دعم"
	_, err = w.SubmitCategory(ctx, sess.SessionID, &dto.CategoryFieldsRequest{
		General:     &model.GeneralStats{SupervisorsCount: 3},
		ReportNotes: &notes,
	})
	require.NoError(t, err)

	snap, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Reports, 1)
	assert.Equal(t, "نحتاج دعم", snap.Reports[0].ReportNotes)
	assert.Equal(t, 3, snap.Reports[0].General.SupervisorsCount)
}
