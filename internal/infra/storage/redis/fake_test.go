package redis

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
)

// fakeServer answers the handful of commands used by this package from
// memory so tests never dial a real Redis.
type fakeServer struct {
	mu   sync.Mutex
	data map[string]string
	sets map[string]map[string]struct{}
	args [][]any
	fail error
}

func newTestClient(t *testing.T) (*client, *fakeServer) {
	t.Helper()

	fake := &fakeServer{data: make(map[string]string), sets: make(map[string]map[string]struct{})}
	conn := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	conn.AddHook(fake)
	t.Cleanup(func() { _ = conn.Close() })

	return &client{conn: conn}, fake
}

func (f *fakeServer) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, fmt.Errorf("fake redis does not dial %s", addr)
	}
}

func (f *fakeServer) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			f.process(cmd)
		}
		return nil
	}
}

func (f *fakeServer) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		f.process(cmd)
		return cmd.Err()
	}
}

func (f *fakeServer) process(cmd redis.Cmder) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.args = append(f.args, cmd.Args())
	if f.fail != nil {
		cmd.SetErr(f.fail)
		return
	}

	args := cmd.Args()
	switch cmd.Name() {
	case "ping":
		cmd.(*redis.StatusCmd).SetVal("PONG")
	case "get":
		val, ok := f.data[args[1].(string)]
		if !ok {
			cmd.SetErr(redis.Nil)
			return
		}
		cmd.(*redis.StringCmd).SetVal(val)
	case "set":
		key := args[1].(string)
		if hasFlag(args, "nx") {
			_, exists := f.data[key]
			if !exists {
				f.data[key] = fmt.Sprint(args[2])
			}
			cmd.(*redis.BoolCmd).SetVal(!exists)
			return
		}
		f.data[key] = fmt.Sprint(args[2])
		cmd.(*redis.StatusCmd).SetVal("OK")
	case "setnx":
		key := args[1].(string)
		_, exists := f.data[key]
		if !exists {
			f.data[key] = fmt.Sprint(args[2])
		}
		cmd.(*redis.BoolCmd).SetVal(!exists)
	case "del":
		var n int64
		for _, k := range args[1:] {
			if _, ok := f.data[k.(string)]; ok {
				delete(f.data, k.(string))
				n++
			}
		}
		cmd.(*redis.IntCmd).SetVal(n)
	case "sadd":
		key := args[1].(string)
		if f.sets[key] == nil {
			f.sets[key] = make(map[string]struct{})
		}
		var n int64
		for _, m := range args[2:] {
			if _, ok := f.sets[key][m.(string)]; !ok {
				f.sets[key][m.(string)] = struct{}{}
				n++
			}
		}
		cmd.(*redis.IntCmd).SetVal(n)
	case "srem":
		key := args[1].(string)
		var n int64
		for _, m := range args[2:] {
			if _, ok := f.sets[key][m.(string)]; ok {
				delete(f.sets[key], m.(string))
				n++
			}
		}
		cmd.(*redis.IntCmd).SetVal(n)
	case "smembers":
		members := make([]string, 0, len(f.sets[args[1].(string)]))
		for m := range f.sets[args[1].(string)] {
			members = append(members, m)
		}
		cmd.(*redis.StringSliceCmd).SetVal(members)
	default:
		cmd.SetErr(fmt.Errorf("fake redis: unsupported command %q", cmd.Name()))
	}
}

func (f *fakeServer) lastArgs() []any {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.args) == 0 {
		return nil
	}
	return f.args[len(f.args)-1]
}

func hasFlag(args []any, flag string) bool {
	for _, a := range args[3:] {
		if s, ok := a.(string); ok && strings.EqualFold(s, flag) {
			return true
		}
	}
	return false
}
