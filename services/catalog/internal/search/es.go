package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/dmarkin/webshop/internal/models"
)

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("es client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es info: %s: %s", res.Status(), body)
	}

	return client, nil
}

func IndexProduct(ctx context.Context, es *elasticsearch.Client, index string, p *models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(p); err != nil {
		return err
	}

	res, err := es.Index(index, &buf,
		es.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func DeleteProduct(ctx context.Context, es *elasticsearch.Client, index string, id uint) error {
	res, err := es.Delete(index, strconv.FormatUint(uint64(id), 10),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	// 404 is fine here, the document was never indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, size int) ([]models.Product, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return prods, nil
}
