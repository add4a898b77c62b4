package booking

import (
	"context"
	"sync"
	"testing"

	"diagnotech/models"

	"github.com/stretchr/testify/assert"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) GetByDoctor(doctorID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.DoctorID == doctorID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) AverageForDoctor(doctorID string) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, rev := range r.reviews {
		if rev.DoctorID == doctorID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *fakeReviewRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.reviews)), nil
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("records a review for an existing doctor", func(t *testing.T) {
		svc := &DefaultReviewService{
			Repo:    &fakeReviewRepo{},
			Doctors: newFakeDoctorRepo(testDoctor()),
		}

		review, err := svc.AddReview(ctx, "doc-1", "patient-1", 5, "very helpful")
		assert.NoError(t, err)
		assert.NotEmpty(t, review.ID)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("rejects ratings outside 1..5", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo(testDoctor())}
		_, err := svc.AddReview(ctx, "doc-1", "patient-1", 0, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
		_, err = svc.AddReview(ctx, "doc-1", "patient-1", 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("reports an unknown doctor", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo()}
		_, err := svc.AddReview(ctx, "doc-9", "patient-1", 4, "")
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("allows repeat reviews by the same patient", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo(testDoctor())}
		_, err := svc.AddReview(ctx, "doc-1", "patient-1", 4, "good")
		assert.NoError(t, err)
		_, err = svc.AddReview(ctx, "doc-1", "patient-1", 2, "changed my mind")
		assert.NoError(t, err)

		reviews, err := svc.ListReviews(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
	})
}

func TestAverageRating(t *testing.T) {
	ctx := context.Background()

	t.Run("averages to one decimal place", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo(testDoctor())}
		for _, rating := range []int{5, 4, 3} {
			_, err := svc.AddReview(ctx, "doc-1", "patient-1", rating, "")
			assert.NoError(t, err)
		}

		summary, err := svc.AverageRating(ctx, "doc-1")
		assert.NoError(t, err)
		assert.True(t, summary.Rated)
		assert.Equal(t, 4.0, summary.Average)
		assert.Equal(t, 3, summary.Count)
	})

	t.Run("rounds a repeating average", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo(testDoctor())}
		for _, rating := range []int{5, 4, 4} {
			_, err := svc.AddReview(ctx, "doc-1", "patient-1", rating, "")
			assert.NoError(t, err)
		}

		summary, err := svc.AverageRating(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Equal(t, 4.3, summary.Average)
	})

	t.Run("reports no rating when there are no reviews", func(t *testing.T) {
		svc := &DefaultReviewService{Repo: &fakeReviewRepo{}, Doctors: newFakeDoctorRepo(testDoctor())}
		summary, err := svc.AverageRating(ctx, "doc-1")
		assert.NoError(t, err)
		assert.False(t, summary.Rated)
		assert.Equal(t, 0, summary.Count)
	})
}
