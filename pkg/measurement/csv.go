// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package measurement

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/utils/fs"
	"github.com/pkg/errors"
)

// Header is the fixed header row of persisted datasets.
var Header = []string{"exec_type", "procs/threads", "vector_size", "time_sec"}

// ErrMalformedTable is returned for files which do not follow the dataset format.
var ErrMalformedTable = errors.New("malformed table")

// EncodeCSV writes header and all records of the dataset.
func EncodeCSV(w io.Writer, dataset Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	for _, record := range dataset.Records {
		row := []string{
			string(record.Kind),
			strconv.Itoa(record.Parallelism),
			strconv.Itoa(record.Size),
			strconv.FormatFloat(record.Time, 'g', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "cannot write record %v", record)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "cannot flush table")
}

// DecodeCSV reads dataset written by EncodeCSV.
func DecodeCSV(r io.Reader, name string) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)

	dataset := NewDataset(name)

	header, err := reader.Read()
	if err == io.EOF {
		return dataset, errors.Wrap(ErrMalformedTable, "missing header")
	}
	if err != nil {
		return dataset, errors.Wrapf(ErrMalformedTable, "header: %v", err)
	}
	for i := range Header {
		if header[i] != Header[i] {
			return dataset, errors.Wrapf(ErrMalformedTable, "unexpected column %q instead of %q", header[i], Header[i])
		}
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return dataset, errors.Wrapf(ErrMalformedTable, "%v", err)
		}

		record, err := parseRow(row)
		if err != nil {
			return dataset, errors.Wrapf(ErrMalformedTable, "line %d: %v", line, err)
		}
		dataset.Add(record)
	}

	return dataset, nil
}

func parseRow(row []string) (record Record, err error) {
	if record.Kind, err = ParseKind(row[0]); err != nil {
		return record, err
	}
	if record.Parallelism, err = strconv.Atoi(row[1]); err != nil {
		return record, errors.Wrap(err, "parallelism")
	}
	if record.Size, err = strconv.Atoi(row[2]); err != nil {
		return record, errors.Wrap(err, "size")
	}
	if record.Time, err = strconv.ParseFloat(row[3], 64); err != nil {
		return record, errors.Wrap(err, "time")
	}
	if math.IsNaN(record.Time) || math.IsInf(record.Time, 0) || record.Time < 0 {
		return record, errors.Errorf("time %q is not a finite non-negative number", row[3])
	}
	return record, nil
}

// WriteCSV stores dataset in a file, overwriting it. Missing directories are created.
func WriteCSV(path string, dataset Dataset) error {
	if err := fs.EnsureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}

	if err := EncodeCSV(file, dataset); err != nil {
		file.Close()
		return errors.Wrapf(err, "cannot write %q", path)
	}

	return errors.Wrapf(file.Close(), "cannot close %q", path)
}

// ReadCSV loads dataset from a file.
func ReadCSV(path string, name string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "cannot open %q", path)
	}
	defer file.Close()

	dataset, err := DecodeCSV(file, name)
	if err != nil {
		return dataset, errors.Wrapf(err, "cannot read %q", path)
	}
	return dataset, nil
}
