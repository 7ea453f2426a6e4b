/*
 * Copyright 2025 The RowForge Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package rowforge is a small in-memory tabular analytics engine.

RowForge loads delimited files into typed, immutable tables and answers
analytic questions over them through a pipeline of pure transformations:
predicate labeling, grouped aggregation, time bucketing, rank windows and
pivot reshaping. It was built for batch analysis of time-stamped sensor
readings but nothing in the engine is sensor specific.

# Features

• Schema inference - narrowest type per column (int before float before string)
• Grouped aggregation - avg, count, min, max, sum with null-aware buckets
• Rank windows - SQL RANK() semantics with tie gaps
• Pivot tables - wide reshaping over a caller-supplied column domain
• CSV in and out - header rows, nulls as empty cells

# Example

Average temperature per location, hottest first:

	frame, err := rowforge.FromCSV("sensor_data.csv")
	if err != nil {
		log.Fatal(err)
	}
	byLocation := frame.Aggregate(
		[]string{"location"},
		[]aggregator.AggregateSpec{
			{OutputName: "avg_temperature", SourceColumn: "temperature", Type: functions.Avg},
			{OutputName: "avg_humidity", SourceColumn: "humidity", Type: functions.Avg},
		},
		aggregator.SortBy("avg_temperature", true),
	)
	if err := byLocation.WriteCSV("by_location.csv"); err != nil {
		log.Fatal(err)
	}

All tables are values: transformations never modify their input, so a loaded
table can feed any number of independent queries.
*/
package rowforge
