package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sentiment-snapshot/internal/competitor"
	"go-sentiment-snapshot/internal/config"
	"go-sentiment-snapshot/internal/database"
	requestEventPublisher "go-sentiment-snapshot/internal/eventpublisher/request"
	snapshotRefreshHandler "go-sentiment-snapshot/internal/handler/snapshotrefresh"
	"go-sentiment-snapshot/internal/nlp"
	requestRepository "go-sentiment-snapshot/internal/repository/analysisrequest"
	competitorCacheRepository "go-sentiment-snapshot/internal/repository/competitorcache"
	reviewHistoryRepository "go-sentiment-snapshot/internal/repository/reviewhistory"
	snapshotRepository "go-sentiment-snapshot/internal/repository/snapshot"
	"go-sentiment-snapshot/internal/sentiment"
	"go-sentiment-snapshot/internal/snapshot"
	"go-sentiment-snapshot/internal/source"
	"go-sentiment-snapshot/internal/utils"

	gpt "go-sentiment-snapshot/internal/gpt"
	gptutils "go-sentiment-snapshot/internal/gpt/utils"

	Firestore "firebase.google.com/go/v4"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

func main() {

	cnf := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	app := createFirestoreAppOrPanic(ctx, cnf.Firebase)
	firestoreClient := createFirestoreClientOrPanic(ctx, app, cnf.Firebase)
	defer firestoreClient.Close()

	tokenizer, err := gptutils.NewTokenizer()
	if err != nil {
		panic(err)
	}

	gptFactory, err := gpt.NewClientFactory(gpt.ClientConfig{
		ApiUrl:      cnf.GilasAI.ApiUrl,
		ApiKey:      cnf.GilasAI.ApiKey,
		Model:       cnf.GilasAI.Model,
		Temperature: utils.Float32ToPointer(0.3),
	})

	if err != nil {
		panic(err)
	}

	snapshotRepo := snapshotRepository.New(&firestoreClient)
	historyRepo := reviewHistoryRepository.New(&firestoreClient)
	cacheRepo := competitorCacheRepository.New(&firestoreClient)
	requestRepo := requestRepository.New(&firestoreClient)

	nlpClient := nlp.NewClient(cnf.NlpService)
	sourceClient := source.NewClient(cnf.ReviewSource)
	resolver := competitor.NewResolver(cacheRepo, competitor.NewGptGenerator(gptFactory, tokenizer))

	service := snapshot.NewService(
		snapshot.Config{
			Pages:                cnf.ReviewSource.Pages,
			TrackAllFingerprints: cnf.Dedup.TrackAllFingerprints,
		},
		sourceClient,
		nlpClient,
		nlpClient,
		resolver,
		snapshotRepo,
		historyRepo,
		sentiment.NewLabelMapping(cnf.Sentiment.LabelMapping),
	)

	publisher := requestEventPublisher.RequestPublisherFactory(requestRepo).OnPendingAnalysisRequest()
	handler := snapshotRefreshHandler.New(publisher, requestRepo, service)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return handler.EventHandler(gctx)
	})
	group.Go(func() error {
		return publisher.Start(gctx)
	})

	select {
	case <-sigs:
		// Received a termination signal, continue to shutdown
	case <-gctx.Done():
		// errgroup encountered an error, continue to shutdown
	}

	cancel() // cancel the root context to signal all the consumers

	select {
	case <-time.After(time.Second * 5):
		// Give enough time to close all the pending resources
	case <-sigs:
		// Forcefully terminate the app with a signal
	}

	os.Exit(1)
}

func createFirestoreAppOrPanic(ctx context.Context, cnf config.Firebase) *Firestore.App {
	FirestoreCreds, err := json.Marshal(cnf)
	if err != nil {
		panic(err)
	}

	sa := option.WithCredentialsJSON(FirestoreCreds)
	app, err := Firestore.NewApp(ctx, nil, sa)
	if err != nil {
		panic(err)
	}
	return app
}

func createFirestoreClientOrPanic(ctx context.Context, app *Firestore.App, cnf config.Firebase) database.FirestoreClient {
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		panic(err)
	}
	return database.New(firestoreClient, cnf.WriteTimeoutSecond)
}
