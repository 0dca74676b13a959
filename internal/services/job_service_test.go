package services

import (
	"testing"
	"time"

	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/stretchr/testify/require"
)

func TestJobCreateDefaults(t *testing.T) {
	svc := NewJobService(setupDB(t))

	job, err := svc.Create(validJobRequest())
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	require.True(t, job.IsActive)
	require.True(t, job.IsSalaryPerAnnum)
}

func TestJobCreateExplicitMonthlySalary(t *testing.T) {
	svc := NewJobService(setupDB(t))

	req := validJobRequest()
	perAnnum := false
	req.IsSalaryPerAnnum = &perAnnum

	job, err := svc.Create(req)
	require.NoError(t, err)
	require.False(t, job.IsSalaryPerAnnum)
}

func TestJobCreateRequiresCityUnlessRemote(t *testing.T) {
	svc := NewJobService(setupDB(t))

	req := validJobRequest()
	req.City = "  "
	_, err := svc.Create(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "city", vErr.Field)

	remote := validJobRequest()
	remote.LocationType = "Remote"
	remote.City = ""
	job, err := svc.Create(remote)
	require.NoError(t, err)
	require.Empty(t, job.City)
}

func TestJobCreateReportsFirstMissingField(t *testing.T) {
	svc := NewJobService(setupDB(t))

	req := validJobRequest()
	req.Platform = ""
	req.Country = ""

	_, err := svc.Create(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "platform", vErr.Field)
}

func TestJobCreateRejectsNegativeSalary(t *testing.T) {
	svc := NewJobService(setupDB(t))

	req := validJobRequest()
	req.SalaryOffered = -1
	_, err := svc.Create(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "salaryOffered", vErr.Field)
}

func TestJobListNewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := NewJobService(db)

	first, err := svc.Create(validJobRequest())
	require.NoError(t, err)
	// created_at must actually differ for the ordering to be observable
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	second, err := svc.Create(validJobRequest())
	require.NoError(t, err)

	jobs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, second.ID, jobs[0].ID)
	require.Equal(t, first.ID, jobs[1].ID)
}

func TestJobGetByIDNotFound(t *testing.T) {
	svc := NewJobService(setupDB(t))

	_, err := svc.GetByID("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJobPatchStatusOnly(t *testing.T) {
	svc := NewJobService(setupDB(t))

	job, err := svc.Create(validJobRequest())
	require.NoError(t, err)

	status := "Offered"
	updated, err := svc.UpdatePartial(job.ID, &dtos.JobPatchRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "Offered", updated.Status)

	// every other field is untouched
	require.Equal(t, job.JobTitle, updated.JobTitle)
	require.Equal(t, job.City, updated.City)
	require.Equal(t, job.SalaryOffered, updated.SalaryOffered)
	require.Equal(t, job.IsActive, updated.IsActive)
}

func TestJobPatchDoesNotRevalidateCityRule(t *testing.T) {
	svc := NewJobService(setupDB(t))

	job, err := svc.Create(validJobRequest())
	require.NoError(t, err)

	// an onsite job can be patched to an empty city; create-time validation
	// is the only gate
	empty := ""
	updated, err := svc.UpdatePartial(job.ID, &dtos.JobPatchRequest{City: &empty})
	require.NoError(t, err)
	require.Empty(t, updated.City)
}

func TestJobPatchNotFound(t *testing.T) {
	svc := NewJobService(setupDB(t))

	status := "Offered"
	_, err := svc.UpdatePartial("missing", &dtos.JobPatchRequest{Status: &status})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJobToggleIsSelfInverse(t *testing.T) {
	svc := NewJobService(setupDB(t))

	job, err := svc.Create(validJobRequest())
	require.NoError(t, err)
	require.True(t, job.IsActive)

	toggled, err := svc.ToggleActive(job.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsActive)

	back, err := svc.ToggleActive(job.ID)
	require.NoError(t, err)
	require.True(t, back.IsActive)
}

func TestJobToggleNotFound(t *testing.T) {
	svc := NewJobService(setupDB(t))

	_, err := svc.ToggleActive("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJobDeleteIsIdempotent(t *testing.T) {
	svc := NewJobService(setupDB(t))

	job, err := svc.Create(validJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(job.ID))
	_, err = svc.GetByID(job.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// deleting again is still success
	require.NoError(t, svc.Delete(job.ID))
	require.NoError(t, svc.Delete("never-existed"))
}
