package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go-sentiment-snapshot/internal/config"
	"go-sentiment-snapshot/internal/database"
	requestRepository "go-sentiment-snapshot/internal/repository/analysisrequest"
	"go-sentiment-snapshot/internal/repository/filter"
	"go-sentiment-snapshot/internal/repository/ops"
	snapshotRepository "go-sentiment-snapshot/internal/repository/snapshot"

	Firestore "firebase.google.com/go/v4"

	"google.golang.org/api/option"
)

// Enqueues one analysis request and prints every snapshot version appended
// for the pair. Usage: client <userId> <asin>
func main() {

	if len(os.Args) != 3 {
		fmt.Println("usage: client <userId> <asin>")
		os.Exit(1)
	}
	userId, asin := os.Args[1], os.Args[2]

	cnf := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := createFirestoreAppOrPanic(ctx, cnf.Firebase)
	firestoreClient := createFirestoreClientOrPanic(ctx, app, cnf.Firebase)
	defer firestoreClient.Close()

	requestRepo := requestRepository.New(&firestoreClient)
	snapshotRepo := snapshotRepository.New(&firestoreClient)

	snapshots := snapshotRepo.NotifyOnAdded(ctx, []filter.Where{
		{Path: snapshotRepository.UserIdFieldPath, Op: ops.Equal, Value: userId},
		{Path: snapshotRepository.AsinFieldPath, Op: ops.Equal, Value: asin},
	})

	request, err := requestRepo.Create(ctx, userId, asin)
	if err != nil {
		panic(err)
	}
	fmt.Println("Analysis request created:", *request.Id)

	for s := range snapshots {
		if s.Err != nil {
			fmt.Println(s.Err)
			continue
		}

		jsonData, err := json.MarshalIndent(s.Snapshot, "", "    ")
		if err != nil {
			fmt.Println("Error marshalling JSON:", err)
			continue
		}
		fmt.Println(string(jsonData))
	}
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
