package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/rs/zerolog/log"
)

// TrainerEngine is what the service needs from the ML trainer.
type TrainerEngine interface {
	Train() (*ml.TrainingReport, error)
}

type TrainingService interface {
	// Train runs the offline pipeline and, on success, hot-swaps the
	// predictor's cached artifacts.
	Train() (*dto.TrainingReportDTO, error)
}

type trainingService struct {
	trainer   TrainerEngine
	predictor PredictorEngine
}

func NewTrainingService(trainer TrainerEngine, predictor PredictorEngine) TrainingService {
	return &trainingService{trainer: trainer, predictor: predictor}
}

func (s *trainingService) Train() (*dto.TrainingReportDTO, error) {
	report, err := s.trainer.Train()
	if err != nil {
		log.Error().Err(err).Msg("Train: training pipeline failed")
		return nil, fmt.Errorf("training failed: %w", err)
	}

	var resp dto.TrainingReportDTO
	if err := copier.Copy(&resp, report); err != nil {
		return nil, fmt.Errorf("error preparing training report: %w", err)
	}

	if report.Status == ml.TrainingStatusTrained {
		if err := s.predictor.Reload(); err != nil && !errors.Is(err, ml.ErrModelNotTrained) {
			log.Warn().Err(err).Msg("Train: model trained but predictor reload failed; stale artifacts remain cached")
		}
	}
	return &resp, nil
}
