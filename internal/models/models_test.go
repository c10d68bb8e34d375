package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTalentProfile_Validate(t *testing.T) {
	assert.NoError(t, (&TalentProfile{Status: TalentStatusOneOff, Rate: ptr(50.0)}).Validate())
	assert.NoError(t, (&TalentProfile{Status: TalentStatusBoth, Rate: ptr(50.0)}).Validate())
	assert.NoError(t, (&TalentProfile{Status: TalentStatusLongTerm}).Validate())

	assert.ErrorIs(t, (&TalentProfile{Status: TalentStatusLongTerm, Rate: ptr(50.0)}).Validate(), ErrRateNotApplicable)
	assert.ErrorIs(t, (&TalentProfile{Status: TalentStatusOneOff, Rate: ptr(-1.0)}).Validate(), ErrNegativeAmount)
	assert.ErrorIs(t, (&TalentProfile{Status: "weekly"}).Validate(), ErrInvalidTalentStatus)
}

func TestTalentProfile_OneOffRate(t *testing.T) {
	rate, ok := (&TalentProfile{Status: TalentStatusBoth, Rate: ptr(75.0)}).OneOffRate()
	assert.True(t, ok)
	assert.Equal(t, 75.0, rate)

	_, ok = (&TalentProfile{Status: TalentStatusLongTerm, Rate: ptr(75.0)}).OneOffRate()
	assert.False(t, ok)
}

func TestJobPosting_Validate(t *testing.T) {
	assert.NoError(t, (&JobPosting{Title: "Editor", JobType: JobTypeOneOff, Budget: ptr(500.0)}).Validate())
	assert.NoError(t, (&JobPosting{Title: "Editor", JobType: JobTypeLongTerm}).Validate())

	assert.ErrorIs(t, (&JobPosting{Title: "Editor", JobType: JobTypeLongTerm, Budget: ptr(500.0)}).Validate(), ErrBudgetNotApplicable)
	assert.ErrorIs(t, (&JobPosting{Title: " ", JobType: JobTypeOneOff}).Validate(), ErrMissingTitle)
	assert.ErrorIs(t, (&JobPosting{Title: "Editor", JobType: "gig"}).Validate(), ErrInvalidJobType)
	assert.ErrorIs(t, (&JobPosting{Title: "Editor", JobType: JobTypeOneOff, Budget: ptr(-5.0)}).Validate(), ErrNegativeAmount)

	budget, ok := (&JobPosting{JobType: JobTypeOneOff, Budget: ptr(10.0)}).OneOffBudget()
	assert.True(t, ok)
	assert.Equal(t, 10.0, budget)
}

func TestReview_Validate(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.NoError(t, (&Review{ReviewerID: "a", ReviewedID: "b", Rating: rating}).Validate())
	}
	assert.ErrorIs(t, (&Review{ReviewerID: "a", ReviewedID: "b", Rating: 0}).Validate(), ErrRatingOutOfRange)
	assert.ErrorIs(t, (&Review{ReviewerID: "a", ReviewedID: "b", Rating: 6}).Validate(), ErrRatingOutOfRange)
	assert.ErrorIs(t, (&Review{ReviewerID: "a", ReviewedID: "a", Rating: 5}).Validate(), ErrSelfReview)
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, (&Message{SenderID: "a", ReceiverID: "b", Content: "hi"}).Validate())
	assert.ErrorIs(t, (&Message{SenderID: "a", ReceiverID: "a", Content: "hi"}).Validate(), ErrSelfMessage)
	assert.ErrorIs(t, (&Message{SenderID: "a", ReceiverID: "b", Content: "  "}).Validate(), ErrEmptyMessage)
}

func TestProject_Participants(t *testing.T) {
	p := &Project{CreatorID: "c", TalentID: "t"}

	assert.True(t, p.IsParticipant("c"))
	assert.True(t, p.IsParticipant("t"))
	assert.False(t, p.IsParticipant("x"))
	assert.False(t, p.IsParticipant(""))

	other, ok := p.Counterparty("c")
	assert.True(t, ok)
	assert.Equal(t, "t", other)
	_, ok = p.Counterparty("x")
	assert.False(t, ok)
}

func TestCreatorProfile_SocialLinks(t *testing.T) {
	p := &CreatorProfile{}
	require.NoError(t, p.SetSocialLinks([]string{"https://youtube.com/@crew", "https://x.com/crew"}))

	links, err := p.Links()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://youtube.com/@crew", "https://x.com/crew"}, links)

	require.NoError(t, p.SetSocialLinks(nil))
	links, err = p.Links()
	require.NoError(t, err)
	assert.Nil(t, links)
}

func TestInvitation_IsUsable(t *testing.T) {
	now := time.Now()
	inv := &Invitation{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, inv.IsUsable(now))
	assert.False(t, inv.IsUsable(now.Add(2*time.Hour)))

	inv.AcceptedAt = &now
	assert.False(t, inv.IsUsable(now))
}

func TestBaseModel_BeforeCreateAssignsID(t *testing.T) {
	b := &BaseModel{}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Len(t, b.ID, 36)

	b2 := &BaseModel{ID: "fixed"}
	require.NoError(t, b2.BeforeCreate(nil))
	assert.Equal(t, "fixed", b2.ID)
}
