package request

import (
	"context"
	"time"

	"go-sentiment-snapshot/internal/eventpublisher"
	"go-sentiment-snapshot/internal/eventpublisher/common"
	"go-sentiment-snapshot/internal/eventpublisher/event"
	requestRepo "go-sentiment-snapshot/internal/repository/analysisrequest"

	"github.com/rs/zerolog/log"
)

const (
	writeTimeout          = time.Second
	writeFailureThreshold = 3
)

type eventFunc func(context.Context) <-chan requestRepo.RequestEvent

type RequestPublisher interface {
	eventpublisher.Publisher
	Start(ctx context.Context) error
}

type requestPublisher struct {
	eventFn    eventFunc
	submanager common.SubManager
	publisher  common.PublisherWithFailureThreshold
}

func new(fn eventFunc) RequestPublisher {
	return &requestPublisher{
		eventFn:    fn,
		submanager: *common.NewSubManager(),
		publisher:  *common.NewPublisherWithFailureThreshold(writeTimeout, writeFailureThreshold),
	}
}

func (p *requestPublisher) Subscribe(subscriber event.EventWChannel) {
	p.submanager.Subscribe(subscriber)
}

func (p *requestPublisher) Unsubscribe(subscriber event.EventWChannel) {
	p.submanager.Unsubscribe(subscriber)
}

func (p *requestPublisher) publish(ctx context.Context, requestEvent requestRepo.RequestEvent) {
	p.submanager.OnSubscribers(func(subscriber event.EventWChannel) {
		go func() {
			if err := p.publisher.Publish(ctx,
				subscriber,
				event.Event{Message: requestEvent.Request, Err: requestEvent.Err}); err != nil {
				p.Unsubscribe(subscriber)
			}
		}()
	})
}

func (p *requestPublisher) Start(ctx context.Context) error {
	defer p.submanager.UnsubscribeAll()

	eventsCh := p.eventFn(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Error().Err(ctx.Err()).Msg("RequestPublisher stopped")
			return ctx.Err()
		case e, ok := <-eventsCh:
			if !ok {
				return nil
			}
			if e.Request.Id != nil {
				log.Debug().Msgf("publish analysis request %s", *e.Request.Id)
			}
			p.publish(ctx, e)
		}
	}
}
