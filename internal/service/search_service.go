package service

import "strings"

// SearchService is the web search collaborator: it returns up to count
// candidate URLs for a query. Order is a relevance hint, not a guarantee.
type SearchService interface {
	Search(query string, count int) []string
}

// educationSearchService is a stub over a fixed list of education sites.
// TODO: replace with a real search API (Google Custom Search, Bing, SerpAPI)
// before production use.
type educationSearchService struct{}

func NewEducationSearchService() SearchService {
	return &educationSearchService{}
}

var educationBaseURLs = []string{
	"https://www.khanacademy.org/search?page_search_query=",
	"https://www.w3schools.com/search/search.asp?q=",
	"https://developer.mozilla.org/en-US/search?q=",
	"https://www.tutorialspoint.com/index.htm?search=",
	"https://www.geeksforgeeks.org/search/?q=",
	"https://www.youtube.com/results?search_query=",
	"https://medium.com/search?q=",
	"https://dev.to/search?q=",
	"https://www.freecodecamp.org/news/search/?query=",
	"https://stackoverflow.com/search?q=",
}

func (s *educationSearchService) Search(query string, count int) []string {
	if count <= 0 {
		return nil
	}
	if count > len(educationBaseURLs) {
		count = len(educationBaseURLs)
	}
	encoded := strings.ReplaceAll(query, " ", "+")
	urls := make([]string, 0, count)
	for _, base := range educationBaseURLs[:count] {
		urls = append(urls, base+encoded)
	}
	return urls
}
