package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"tableread/internal/cache"
	"tableread/internal/config"
	"tableread/internal/model"
	"tableread/internal/repository"
	"tableread/internal/service"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs a batch of randomized demo sessions through the whole stack so
// the reviewer endpoints have something to show.

var nicknames = []string{"Doyle", "Jennifer", "Phil", "Daniel", "Vanessa", "Johnny", "Liv", "Stu"}

func main() {
	count := flag.Int("sessions", 8, "number of demo sessions to run")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}

	resultSvc := service.NewResultService(repository.NewResultRepo(db), cache.NewTallyCache(rdb))
	sessionSvc := service.NewSessionService(repository.NewSessionRepo(db), cache.NewSessionCache(rdb), service.NewAuthService(), resultSvc)

	for i := 0; i < *count; i++ {
		nickname := nicknames[i%len(nicknames)]

		resp, err := sessionSvc.Start(ctx, nickname)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}

		question := resp.FirstQuestion
		for question != nil {
			// Roughly one in ten questions gets skipped
			if rand.IntN(10) == 0 {
				step, err := sessionSvc.Skip(ctx, resp.SessionID, question.ID)
				if err != nil {
					log.Fatalf("Failed to skip question: %v", err)
				}
				question = step.NextQuestion
				continue
			}

			step, err := sessionSvc.RecordAnswer(ctx, resp.SessionID, &model.RecordAnswerRequest{
				QuestionID: question.ID,
				Response:   randomResponse(question),
			})
			if err != nil {
				log.Fatalf("Failed to record answer: %v", err)
			}
			question = step.NextQuestion
		}

		answered, err := sessionSvc.Complete(ctx, resp.SessionID)
		if err != nil {
			log.Fatalf("Failed to complete session: %v", err)
		}

		record, err := resultSvc.GetResult(ctx, resp.SessionID)
		if err != nil || record == nil {
			log.Fatalf("Failed to read back result for %s: %v", resp.SessionID, err)
		}

		fmt.Printf("%s answered %d/%d and came out %s (%.1f, %.1f)\n",
			nickname, answered, resp.QuestionCount,
			record.Profile.Persona, record.Profile.NormX, record.Profile.NormY)
	}
}

func randomResponse(q *model.Question) model.ResponseValue {
	switch q.Modality {
	case model.ModalityAgree:
		v := q.ScaleMin + rand.IntN(q.ScaleMax-q.ScaleMin+1)
		return model.ResponseValue{Scale: &v}
	case model.ModalityChoice:
		return model.ResponseValue{Option: q.Options[rand.IntN(len(q.Options))]}
	default:
		v := q.ScaleMin + rand.IntN(q.ScaleMax-q.ScaleMin+1)
		return model.ResponseValue{Slider: &v}
	}
}
