package fixture

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

type account struct {
	owner solana.PublicKey
	data  []byte
}

type tokenAccount struct {
	address solana.PublicKey
	account
}

// RPC answers the read-only Solana JSON-RPC methods the client uses from an
// in-memory account set. Unknown accounts come back as null.
type RPC struct {
	Epoch     uint64
	BlockTime int64

	mu            sync.Mutex
	accounts      map[solana.PublicKey]account
	tokenAccounts map[solana.PublicKey][]tokenAccount
	batches       []int
}

func NewRPC() *RPC {
	return &RPC{
		accounts:      make(map[solana.PublicKey]account),
		tokenAccounts: make(map[solana.PublicKey][]tokenAccount),
	}
}

func (r *RPC) SetAccount(address, owner solana.PublicKey, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[address] = account{owner: owner, data: data}
}

// AddTokenAccount registers a token account under tokenProgram for getTokenAccountsByOwner.
func (r *RPC) AddTokenAccount(tokenProgram, address solana.PublicKey, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenAccounts[tokenProgram] = append(r.tokenAccounts[tokenProgram], tokenAccount{
		address: address,
		account: account{owner: tokenProgram, data: data},
	})
}

// MultipleAccountsBatches returns the key count of every getMultipleAccounts call.
func (r *RPC) MultipleAccountsBatches() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int{}, r.batches...)
}

// Start serves r until the test ends and returns the endpoint URL.
func (r *RPC) Start(t testing.TB) string {
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server.URL
}

func (r *RPC) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc := gjson.ParseBytes(body)
	params := doc.Get("params").Array()

	r.mu.Lock()
	result, ok := r.handle(doc.Get("method").String(), params)
	r.mu.Unlock()

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": jsoniter.RawMessage(doc.Get("id").Raw)}
	if ok {
		resp["result"] = result
	} else {
		resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
	}
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

func (r *RPC) handle(method string, params []gjson.Result) (interface{}, bool) {
	switch method {
	case "getAccountInfo":
		return withContext(r.lookup(params[0].String())), true
	case "getMultipleAccounts":
		keys := params[0].Array()
		r.batches = append(r.batches, len(keys))
		values := make([]interface{}, len(keys))
		for i, key := range keys {
			values[i] = r.lookup(key.String())
		}
		return withContext(values), true
	case "getTokenAccountsByOwner":
		program, err := solana.PublicKeyFromBase58(params[1].Get("programId").String())
		if err != nil {
			return nil, false
		}
		values := make([]interface{}, 0, len(r.tokenAccounts[program]))
		for _, acc := range r.tokenAccounts[program] {
			values = append(values, map[string]interface{}{
				"pubkey":  acc.address.String(),
				"account": encodeAccount(acc.account),
			})
		}
		return withContext(values), true
	case "getEpochInfo":
		return map[string]interface{}{
			"absoluteSlot": 1000,
			"blockHeight":  1000,
			"epoch":        r.Epoch,
			"slotIndex":    0,
			"slotsInEpoch": 432000,
		}, true
	case "getSlot":
		return 1000, true
	case "getBlockTime":
		return r.BlockTime, true
	}
	return nil, false
}

func (r *RPC) lookup(address string) interface{} {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil
	}
	acc, ok := r.accounts[key]
	if !ok {
		return nil
	}
	return encodeAccount(acc)
}

func withContext(value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"context": map[string]interface{}{"slot": 1000},
		"value":   value,
	}
}

func encodeAccount(acc account) map[string]interface{} {
	return map[string]interface{}{
		"data":       []string{base64.StdEncoding.EncodeToString(acc.data), "base64"},
		"executable": false,
		"lamports":   1_000_000,
		"owner":      acc.owner.String(),
		"rentEpoch":  0,
		"space":      len(acc.data),
	}
}
