package snapshotrefresh

import (
	"context"
	"errors"

	ierr "go-sentiment-snapshot/internal/errors"
	"go-sentiment-snapshot/internal/eventpublisher"
	"go-sentiment-snapshot/internal/eventpublisher/event"
	"go-sentiment-snapshot/internal/model"
	requestRepository "go-sentiment-snapshot/internal/repository/analysisrequest"
	"go-sentiment-snapshot/internal/snapshot"

	"github.com/rs/zerolog/log"
)

// Handler consumes pending analysis requests and drives the snapshot service.
// Each request is processed start-to-finish by one goroutine; requests for
// the same (userId, asin) pair are not serialized against each other.
type Handler struct {
	requestEventPublisher eventpublisher.Publisher
	requestRepo           requestRepository.IRepository
	service               *snapshot.Service
	requestSubscriptionCh event.EventChannel
}

func New(
	requestEventPublisher eventpublisher.Publisher,
	requestRepo requestRepository.IRepository,
	service *snapshot.Service) *Handler {

	return &Handler{
		requestEventPublisher: requestEventPublisher,
		requestRepo:           requestRepo,
		service:               service,
		requestSubscriptionCh: make(event.EventChannel),
	}
}

func (h *Handler) subscribeToEvents() {
	h.requestEventPublisher.Subscribe(h.eventChannel())
}

func (h *Handler) unsubscribeFromEvents() {
	h.requestEventPublisher.Unsubscribe(h.eventChannel())
}

func (h *Handler) eventChannel() chan<- event.Event {
	return h.requestSubscriptionCh
}

func (h *Handler) EventHandler(ctx context.Context) error {

	h.subscribeToEvents()
	defer h.unsubscribeFromEvents()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-h.requestSubscriptionCh:
			if !ok {
				return nil
			}

			if event.Err != nil {
				log.Error().Err(event.Err).Msg("snapshot refresh handler: error reading events")
				return event.Err
			}

			request, ok := event.Message.(model.AnalysisRequest)
			if !ok {
				continue
			}

			go h.handle(ctx, request)
		}
	}
}

func (h *Handler) handle(ctx context.Context, request model.AnalysisRequest) error {

	if request.Id == nil || request.UserId == nil || request.Asin == nil {
		log.Error().Msg("snapshot refresh handler: request doc misses id, userId or asin")
		return ierr.InvalidArgument
	}

	log.Debug().Msgf("snapshot refresh - request %s", *request.Id)

	result, err := h.service.GetOrRefresh(ctx, *request.UserId, *request.Asin)
	if err != nil {
		logFailure(err, *request.Id)
		// Leave the request unprocessed so a later run can retry it.
		return err
	}

	switch {
	case result.NoReviewsFound:
		log.Debug().Msgf("snapshot refresh - no reviews found for request %s", *request.Id)
	case result.Snapshot != nil:
		log.Debug().Msgf("snapshot refresh - snapshot ready for request %s, asin %s", *request.Id, *result.Snapshot.Asin)
	}

	if err := h.requestRepo.MarkProcessed(ctx, *request.Id); err != nil {
		log.Error().Err(err).Msgf("snapshot refresh handler: failed to mark request %s processed", *request.Id)
		return err
	}

	return nil
}

func logFailure(err error, requestId string) {
	switch {
	case errors.Is(err, ierr.MetadataFetch):
		log.Error().Err(err).Msgf("snapshot refresh handler: metadata fetch failed - request %s", requestId)
	case errors.Is(err, ierr.Nlp):
		log.Error().Err(err).Msgf("snapshot refresh handler: nlp failed - request %s", requestId)
	case errors.Is(err, ierr.Persistence):
		log.Error().Err(err).Msgf("snapshot refresh handler: persistence failed - request %s", requestId)
	default:
		log.Error().Err(err).Msgf("snapshot refresh handler: request %s failed", requestId)
	}
}
