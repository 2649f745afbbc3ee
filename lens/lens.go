// Package lens queries the Lens profile API for the attributes of the
// profiles owned by an address.
package lens

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hasura/go-graphql-client"
)

// EthereumAddress is named after the Lens scalar so the query variable is
// declared as $owner: EthereumAddress!.
type EthereumAddress string

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Client struct {
	client *graphql.Client
}

func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		client: graphql.NewClient(endpoint, httpClient),
	}
}

// {
//   profiles(request: { ownedBy: [$owner] }) {
//     items {
//       attributes { key value }
//     }
//   }
// }
func (c *Client) Attributes(ctx context.Context, owner common.Address) ([]Attribute, error) {
	var query struct {
		Profiles struct {
			Items []struct {
				Attributes []Attribute
			}
		} `graphql:"profiles(request: { ownedBy: [$owner] })"`
	}

	if err := c.client.Query(ctx, &query, map[string]interface{}{
		"owner": EthereumAddress(owner.Hex()),
	}); err != nil {
		return nil, err
	}

	if len(query.Profiles.Items) == 0 {
		return []Attribute{}, nil
	}
	attrs := query.Profiles.Items[0].Attributes
	if attrs == nil {
		attrs = []Attribute{}
	}
	return attrs, nil
}
