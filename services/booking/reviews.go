package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	doctorRepo "diagnotech/database/repository/doctor"
	reviewRepo "diagnotech/database/repository/review"
	"diagnotech/models"

	"github.com/google/uuid"
)

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo    reviewRepo.ReviewRepository
	Doctors doctorRepo.DoctorRepository
}

func (s *DefaultReviewService) AddReview(ctx context.Context, doctorID, patientID string, rating int, comment string) (*models.Review, error) {
	if doctorID == "" || patientID == "" {
		return nil, ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if s.Doctors != nil {
		doc, err := s.Doctors.GetByID(doctorID)
		if err != nil {
			return nil, fmt.Errorf("failed to add review: %w", err)
		}
		if doc == nil {
			return nil, ErrDoctorNotFound
		}
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}
	return review, nil
}

func (s *DefaultReviewService) ListReviews(ctx context.Context, doctorID string) ([]models.Review, error) {
	if doctorID == "" {
		return nil, ErrInvalidRequest
	}
	reviews, err := s.Repo.GetByDoctor(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// AverageRating rounds the mean to one decimal place.
func (s *DefaultReviewService) AverageRating(ctx context.Context, doctorID string) (models.RatingSummary, error) {
	if doctorID == "" {
		return models.RatingSummary{}, ErrInvalidRequest
	}
	avg, count, err := s.Repo.AverageForDoctor(doctorID)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to compute rating: %w", err)
	}
	if count == 0 {
		return models.RatingSummary{Rated: false}, nil
	}
	return models.RatingSummary{
		Average: math.Round(avg*10) / 10,
		Count:   count,
		Rated:   true,
	}, nil
}
