package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

const jobsIndex = "jobs"

// jobDocument is the subset of a job posting stored in the search index.
// The relational store stays authoritative; search only returns IDs.
type jobDocument struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
}

// JobIndex maintains the full-text index over job postings.
type JobIndex struct {
	client *elasticsearch.Client
}

func NewJobIndex(client *elasticsearch.Client) *JobIndex {
	return &JobIndex{client: client}
}

func (i *JobIndex) Index(ctx context.Context, job *domain.Job) error {
	doc := jobDocument{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		Skills:      job.Skills,
		Location:    job.Location,
		Status:      job.Status,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("index job: %w", err)
	}

	res, err := i.client.Index(
		jobsIndex,
		&buf,
		i.client.Index.WithDocumentID(job.ID),
		i.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index job: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index job: %s", res.Status())
	}
	return nil
}

func (i *JobIndex) Delete(ctx context.Context, jobID string) error {
	res, err := i.client.Delete(
		jobsIndex,
		jobID,
		i.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete job document: %w", err)
	}
	defer res.Body.Close()

	// A missing document is fine; the goal is that it is not in the index.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete job document: %s", res.Status())
	}
	return nil
}

// Search returns IDs of open jobs matching the query, best match first.
func (i *JobIndex) Search(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^3", "skills^2", "description", "category", "location"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"status.keyword": domain.JobStatusOpen},
				},
			},
		},
		"size": 50,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(jobsIndex),
		i.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search jobs: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("search jobs: decode response: %w", err)
	}

	ids := make([]string, len(r.Hits.Hits))
	for n, hit := range r.Hits.Hits {
		ids[n] = hit.ID
	}
	return ids, nil
}
