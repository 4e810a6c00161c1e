package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// RemoteProvider proxies a FakeStore-style catalog API. Calls are synchronous
// with a fixed timeout and no retry; failures surface as ErrUpstream.
type RemoteProvider struct {
	baseURL string
	client  *http.Client
}

func NewRemoteProvider(baseURL string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteProvider) ListCategories() ([]Category, error) {
	var names []string
	if err := r.getJSON("/products/categories", &names); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(names))
	for _, n := range names {
		out = append(out, Category{ID: Slugify(n), Name: n})
	}
	return out, nil
}

func (r *RemoteProvider) ListByCategory(categoryID string) ([]Product, error) {
	var out []Product
	err := r.getJSON("/products/category/"+categoryID, &out)
	if errors.Is(err, ErrNotFound) {
		// Unknown categories are an empty list, same contract as the
		// in-memory provider.
		return []Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteProvider) GetProduct(productID uint) (Product, error) {
	var p Product
	if err := r.getJSON(fmt.Sprintf("/products/%d", productID), &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *RemoteProvider) getJSON(path string, v interface{}) error {
	resp, err := r.client.Get(r.baseURL + path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}
