package store

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/pancake-labs/lead-ingest/internal/model"
	"github.com/pancake-labs/lead-ingest/pkg/sheets/mocks"
)

func testRecord() model.LeadRecord {
	return model.LeadRecord{
		CustomerID:         "p1",
		PostID:             "post1",
		PageTitle:          "Sale",
		CustomerName:       "Binh",
		Phone:              "0987654321",
		CommentTime:        time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC),
		CommentTimeDisplay: "15/06/2024 10:00:00",
	}
}

func TestEnsurePartition_AlreadyListed(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("SheetTitles", mock.Anything).Return([]string{"Sheet1", "data_202406"}, nil)

	st := NewSheetStore(client)
	require.NoError(t, st.EnsurePartition(context.Background(), "data_202406"))
	client.AssertNotCalled(t, "AddSheet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsurePartition_CreatesWithConfiguredSize(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("SheetTitles", mock.Anything).Return([]string{"Sheet1"}, nil)
	client.On("AddSheet", mock.Anything, "data_202406", int64(5000), int64(12)).Return(nil)

	st := NewSheetStore(client, WithPartitionSize(5000, 12))
	require.NoError(t, st.EnsurePartition(context.Background(), "data_202406"))
}

func TestEnsurePartition_DefaultSize(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("SheetTitles", mock.Anything).Return(nil, nil)
	client.On("AddSheet", mock.Anything, "data_202406", DefaultPartitionRows, DefaultPartitionCols).Return(nil)

	st := NewSheetStore(client)
	require.NoError(t, st.EnsurePartition(context.Background(), "data_202406"))
}

func TestEnsurePartition_LostCreationRaceIsSuccess(t *testing.T) {
	// Another process created the tab between our list and our create.
	raceErr := &googleapi.Error{
		Code:    400,
		Message: `Invalid requests[0].addSheet: A sheet with the name "data_202406" already exists.`,
	}

	client := mocks.NewMockClient(t)
	client.On("SheetTitles", mock.Anything).Return([]string{"Sheet1"}, nil)
	client.On("AddSheet", mock.Anything, "data_202406", mock.Anything, mock.Anything).Return(raceErr)

	st := NewSheetStore(client)
	assert.NoError(t, st.EnsurePartition(context.Background(), "data_202406"))
}

func TestEnsurePartition_ListFailureIsUnavailable(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("SheetTitles", mock.Anything).Return(nil, eris.New("dial tcp: timeout"))

	st := NewSheetStore(client)
	err := st.EnsurePartition(context.Background(), "data_202406")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnavailable))
}

func TestExists_MatchOnBothColumns(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("ReadRange", mock.Anything, "data_202406!A:B").Return([][]string{
		{"p9", "post1"},
		{"p1", "post9"},
		{"p1", "post1"},
	}, nil)

	st := NewSheetStore(client)
	found, err := st.Exists(context.Background(), "data_202406", "p1", "post1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestExists_PartialMatchIsNotFound(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("ReadRange", mock.Anything, "data_202406!A:B").Return([][]string{
		{"p1", "post9"},
		{"p9", "post1"},
		{"p1"}, // short row: customerId only
	}, nil)

	st := NewSheetStore(client)
	found, err := st.Exists(context.Background(), "data_202406", "p1", "post1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExists_EmptyPartition(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("ReadRange", mock.Anything, "data_202406!A:B").Return(nil, nil)

	st := NewSheetStore(client)
	found, err := st.Exists(context.Background(), "data_202406", "p1", "post1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExists_ReadFailureIsUnavailable(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("ReadRange", mock.Anything, mock.Anything).Return(nil, eris.New("quota exceeded"))

	st := NewSheetStore(client)
	_, err := st.Exists(context.Background(), "data_202406", "p1", "post1")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnavailable))
}

func TestAppend_WritesFixedColumnOrder(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("AppendRow", mock.Anything, "data_202406!A:F",
		[]string{"p1", "post1", "Sale", "Binh", "0987654321", "15/06/2024 10:00:00"}).Return(nil)

	st := NewSheetStore(client)
	require.NoError(t, st.Append(context.Background(), "data_202406", testRecord()))
}

func TestAppend_FailureIsUnavailable(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(eris.New("503"))

	st := NewSheetStore(client)
	err := st.Append(context.Background(), "data_202406", testRecord())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnavailable))
}
