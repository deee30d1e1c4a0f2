package input

import (
	"errors"
	"testing"

	mocks "github.com/cbodonnell/shapesort/mocks/github.com/cbodonnell/shapesort/pkg/queue"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/queue"
	"github.com/stretchr/testify/assert"
)

func TestEnqueueAll(t *testing.T) {
	move := &types.PointerMoveEvent{X: 1, Y: 2}
	up := &types.PointerUpEvent{}
	restart := &types.RestartCommand{}

	tests := []struct {
		name    string
		setup   func(q *mocks.Queue)
		wantErr bool
	}{
		{
			name: "all accepted",
			setup: func(q *mocks.Queue) {
				q.EXPECT().Enqueue(move).Return(nil).Once()
				q.EXPECT().Enqueue(up).Return(nil).Once()
				q.EXPECT().Enqueue(restart).Return(nil).Once()
			},
		},
		{
			name: "a rejected event does not stop the ones after it",
			setup: func(q *mocks.Queue) {
				q.EXPECT().Enqueue(move).Return(queue.ErrQueueFull).Once()
				q.EXPECT().Enqueue(up).Return(nil).Once()
				q.EXPECT().Enqueue(restart).Return(nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewQueue(t)
			tt.setup(q)

			err := enqueueAll(q, []interface{}{move, up, restart})
			if tt.wantErr {
				assert.True(t, errors.Is(err, queue.ErrQueueFull))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
