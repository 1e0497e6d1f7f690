package content

import (
	"context"
	"testing"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContent(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}, db
}

var admin = domain.Actor{UserID: "admin-1", Email: "admin@example.com", Role: "admin"}

func boolPtr(b bool) *bool { return &b }

func TestNews_PublishedOnlyAndAuthorFromActor(t *testing.T) {
	svc, db := setupContent(t)
	ctx := context.Background()
	pub, err := svc.CreateNews(ctx, NewsInput{Title: "Camp", Content: "Health camp held"}, admin)
	require.NoError(t, err)
	_, err = svc.CreateNews(ctx, NewsInput{Title: "Draft", Content: "wip", Published: boolPtr(false)}, admin)
	require.NoError(t, err)

	list, err := svc.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pub.ID, list[0].ID.String())
	assert.Equal(t, admin.UserID, list[0].AuthorID)

	var total int64
	db.Model(&domain.News{}).Count(&total)
	assert.Equal(t, int64(2), total)
}

func TestNews_Delete(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	res, err := svc.CreateNews(ctx, NewsInput{Title: "T", Content: "C"}, admin)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteNews(ctx, res.ID))
	assert.ErrorIs(t, svc.DeleteNews(ctx, res.ID), ErrNewsNotFound)
	assert.ErrorIs(t, svc.DeleteNews(ctx, "bogus"), ErrNewsNotFound)
}

func TestActivities(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	_, err := svc.CreateActivity(ctx, ActivityInput{Title: "Drive", Description: "Food drive", Images: []string{"/api/uploads/a.png"}}, admin)
	require.NoError(t, err)
	list, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"/api/uploads/a.png"}, []string(list[0].Images))

	_, err = svc.CreateActivity(ctx, ActivityInput{Title: "No description"}, admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaigns_ActiveWithRecomputedTotals(t *testing.T) {
	svc, db := setupContent(t)
	ctx := context.Background()
	active, err := svc.CreateCampaign(ctx, CampaignInput{Title: "Flood relief", Description: "d", GoalAmount: 10000, StartDate: "2025-01-01", EndDate: "2025-12-31"})
	require.NoError(t, err)
	_, err = svc.CreateCampaign(ctx, CampaignInput{Title: "Old", Description: "d", GoalAmount: 10, StartDate: "2024-01-01", EndDate: "2024-02-01", Status: "completed"})
	require.NoError(t, err)

	cid := active.ID
	for _, d := range []domain.Donation{
		{DonorName: "a", DonorEmail: "a@x.com", Amount: 300, PaymentMethod: domain.PaymentCash, Status: domain.DonationCompleted, ReceiptNumber: "R1", CampaignID: &cid},
		{DonorName: "b", DonorEmail: "b@x.com", Amount: 200, PaymentMethod: domain.PaymentCash, Status: domain.DonationCompleted, ReceiptNumber: "R2", CampaignID: &cid},
		{DonorName: "c", DonorEmail: "c@x.com", Amount: 999, PaymentMethod: domain.PaymentOnline, Status: domain.DonationPending, ReceiptNumber: "R3", CampaignID: &cid},
	} {
		d := d
		require.NoError(t, db.Create(&d).Error)
	}

	list, err := svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Flood relief", list[0].Title)
	assert.InDelta(t, 500.0, list[0].CurrentAmount, 0.001)
}

func TestCampaigns_BadDate(t *testing.T) {
	svc, _ := setupContent(t)
	_, err := svc.CreateCampaign(context.Background(), CampaignInput{Title: "x", Description: "d", GoalAmount: 1, StartDate: "tomorrow", EndDate: "2025-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvents_SortedByDate(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	for _, date := range []string{"2025-06-01", "2025-01-15", "2025-03-10T10:00:00Z"} {
		_, err := svc.CreateEvent(ctx, EventInput{Title: date, Description: "d", EventDate: date, Location: "Pune"})
		require.NoError(t, err)
	}
	list, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-01-15", list[0].Title)
	assert.Equal(t, "2025-06-01", list[2].Title)
}

func TestProjects(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	res, err := svc.CreateProject(ctx, ProjectInput{Title: "School", Description: "d", Budget: 5000, StartDate: "2025-01-01"})
	require.NoError(t, err)
	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusActive, list[0].Status)
	assert.Nil(t, list[0].EndDate)
	require.NoError(t, svc.DeleteProject(ctx, res.ID))
}

func TestInternships_Apply(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	res, err := svc.CreateInternship(ctx, InternshipInput{Title: "Field work", Description: "d", Duration: "3 months", Positions: 1})
	require.NoError(t, err)

	applicant := domain.Actor{UserID: "user-1", Role: "public"}
	in := ApplyInput{Name: "Neha", Email: "neha@example.com", Phone: "9876543210"}
	require.NoError(t, svc.Apply(ctx, res.ID, in, applicant))
	require.NoError(t, svc.Apply(ctx, res.ID, in, applicant))

	list, err := svc.ListInternships(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Applications, 2)
	assert.Equal(t, "user-1", list[0].Applications[0].ApplicantID)
	assert.Equal(t, domain.ApplicationPending, list[0].Applications[1].Status)

	assert.ErrorIs(t, svc.Apply(ctx, "00000000-0000-0000-0000-000000000000", in, applicant), ErrInternshipNotFound)
	assert.ErrorIs(t, svc.Apply(ctx, "nope", in, applicant), ErrInternshipNotFound)
}

func TestInternships_ApplyEmailFromToken(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	res, err := svc.CreateInternship(ctx, InternshipInput{Title: "Teaching", Description: "d", Duration: "1 month", Positions: 2})
	require.NoError(t, err)

	member := domain.Actor{UserID: "user-2", Email: "Ravi@Example.com", Role: "member"}
	require.NoError(t, svc.Apply(ctx, res.ID, ApplyInput{Name: "Ravi"}, member))

	list, err := svc.ListInternships(ctx)
	require.NoError(t, err)
	require.Len(t, list[0].Applications, 1)
	got := list[0].Applications[0]
	assert.Equal(t, "Ravi", got.ApplicantName)
	assert.Equal(t, "ravi@example.com", got.ApplicantEmail)

	err = svc.Apply(ctx, res.ID, ApplyInput{Name: "Anon"}, domain.Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDesignations(t *testing.T) {
	svc, _ := setupContent(t)
	ctx := context.Background()
	_, err := svc.CreateDesignation(ctx, DesignationInput{Name: "Patron", Fee: 5000, Benefits: []string{"Certificate"}})
	require.NoError(t, err)
	_, err = svc.CreateDesignation(ctx, DesignationInput{Name: "Volunteer", Fee: 100})
	require.NoError(t, err)
	list, err := svc.ListDesignations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Volunteer", list[0].Name)
	assert.Equal(t, []string{"Certificate"}, []string(list[1].Benefits))
}
