package viewstate

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery_RoundTrip(t *testing.T) {
	testCases := []struct {
		TestName string
		Query    Query
	}{
		{
			TestName: "Full filter set #1",
			Query: Query{
				Search:       "thai noodles",
				Cuisine:      "thai",
				MinRating:    4.5,
				MaxPrice:     2,
				OpenNow:      true,
				HasPromotion: true,
				Sort:         SortRating,
				Page:         3,
				Tab:          "search",
			},
		},
		{
			TestName: "Defaults only #2",
			Query:    Query{Sort: SortRecommended, Page: 1},
		},
		{
			TestName: "Search without filters #3",
			Query:    Query{Search: "pizza", Sort: SortRecommended, Page: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			restored := Decode(tc.Query.Encode())
			if diff := cmp.Diff(tc.Query, restored); diff != "" {
				t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_EncodeOmitsDefaults(t *testing.T) {
	query := Query{Sort: SortRecommended, Page: 1}
	if encoded := query.Encode().Encode(); encoded != "" {
		t.Errorf("Expected empty query string for defaults, got '%s'", encoded)
	}
}

func TestQuery_DecodeIgnoresGarbage(t *testing.T) {
	values := url.Values{}
	values.Set("min_rating", "not-a-number")
	values.Set("max_price", "-5")
	values.Set("page", "0")

	query := Decode(values)
	expected := Query{Sort: SortRecommended, Page: 1}
	if diff := cmp.Diff(expected, query); diff != "" {
		t.Errorf("Decode of invalid values mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_ActiveFilterCount(t *testing.T) {
	testCases := []struct {
		TestName string
		Query    Query
		Expected int
	}{
		{
			TestName: "No filters #1",
			Query:    Query{Search: "pizza", Sort: SortRating, Page: 4},
			Expected: 0,
		},
		{
			TestName: "Every filter #2",
			Query: Query{
				Cuisine:      "thai",
				MinRating:    4,
				MaxPrice:     3,
				OpenNow:      true,
				HasPromotion: true,
			},
			Expected: 5,
		},
		{
			TestName: "Cuisine and open now #3",
			Query:    Query{Cuisine: "mexican", OpenNow: true},
			Expected: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := tc.Query.ActiveFilterCount(); got != tc.Expected {
				t.Errorf("Expected %d active filters, got %d", tc.Expected, got)
			}
		})
	}
}
