// Package notify announces finished catalog scrapes on a Pub/Sub topic so
// downstream visualizations can rebuild.
package notify

import (
	"cloud.google.com/go/pubsub"
	"context"
	"encoding/json"
	"fmt"
	"github.com/openswoop/catalog/pkg/scrape"
	"google.golang.org/api/option"
	"sort"
	"time"
)

// Refreshed is the payload published after a successful scrape.
type Refreshed struct {
	Pages       int       `json:"pages"`
	Courses     int       `json:"courses"`
	Departments []string  `json:"departments"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

func NewRefreshed(pages int, courses []scrape.Course, now time.Time) Refreshed {
	seen := make(map[string]bool)
	departments := []string{}
	for _, c := range courses {
		if _, found := seen[c.Department]; !found && c.Department != "" {
			departments = append(departments, c.Department)
			seen[c.Department] = true
		}
	}
	sort.Strings(departments)
	return Refreshed{
		Pages:       pages,
		Courses:     len(courses),
		Departments: departments,
		ScrapedAt:   now.UTC(),
	}
}

type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPublisher connects to topicID in projectID. An empty credentialsFile
// falls back to application default credentials.
func NewPublisher(ctx context.Context, projectID, topicID, credentialsFile string) (*Publisher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &Publisher{client: client, topic: client.Topic(topicID)}, nil
}

// Publish sends the event and waits for the server to acknowledge it.
func (p *Publisher) Publish(ctx context.Context, event Refreshed) (string, error) {
	msg, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	res := p.topic.Publish(ctx, &pubsub.Message{
		Data:       msg,
		Attributes: map[string]string{"event": "catalog-refreshed"},
	})
	id, err := res.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to publish message: %w", err)
	}
	return id, nil
}

func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
