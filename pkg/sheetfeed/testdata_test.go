package sheetfeed

const worksheetsJSON = `{
  "version": "1.0",
  "encoding": "UTF-8",
  "feed": {
    "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/public/values"},
    "updated": {"$t": "2014-02-19T10:11:12.345Z"},
    "title": {"type": "text", "$t": "Example Spreadsheet"},
    "author": [{"name": {"$t": "sam.c.day"}, "email": {"$t": "sam.c.day@gmail.com"}}],
    "openSearch$totalResults": {"$t": "2"},
    "entry": [
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/public/values/od6"},
        "title": {"type": "text", "$t": "Sheet1"},
        "gs$rowCount": {"$t": "100"},
        "gs$colCount": {"$t": "20"}
      },
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/public/values/od7"},
        "title": {"type": "text", "$t": "Sheet2"},
        "gs$rowCount": {"$t": "5"},
        "gs$colCount": {"$t": "3"}
      }
    ]
  }
}`

const worksheetsSingleJSON = `{
  "feed": {
    "title": {"$t": "Single"},
    "updated": {"$t": "2014-02-19T10:11:12Z"},
    "author": {"name": {"$t": "solo"}, "email": {"$t": "solo@example.com"}},
    "entry": {
      "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/public/values/od6"},
      "title": {"$t": "Only"},
      "gs$rowCount": {"$t": "10"},
      "gs$colCount": {"$t": "2"}
    }
  }
}`

const worksheetsXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns='http://www.w3.org/2005/Atom' xmlns:openSearch='http://a9.com/-/spec/opensearch/1.1/' xmlns:gs='http://schemas.google.com/spreadsheets/2006'>
  <id>https://spreadsheets.google.com/feeds/worksheets/abc123/private/full</id>
  <updated>2014-02-19T10:11:12.345Z</updated>
  <title type='text'>Example Spreadsheet</title>
  <author><name>sam.c.day</name><email>sam.c.day@gmail.com</email></author>
  <openSearch:totalResults>2</openSearch:totalResults>
  <entry>
    <id>https://spreadsheets.google.com/feeds/worksheets/abc123/private/full/od6</id>
    <title type='text'>Sheet1</title>
    <gs:rowCount>100</gs:rowCount>
    <gs:colCount>20</gs:colCount>
  </entry>
  <entry>
    <id>https://spreadsheets.google.com/feeds/worksheets/abc123/private/full/od7</id>
    <title type='text'>Sheet2</title>
    <gs:rowCount>5</gs:rowCount>
    <gs:colCount>3</gs:colCount>
  </entry>
</feed>`

const rowsJSON = `{
  "feed": {
    "title": {"$t": "Sheet1"},
    "entry": [
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/list/abc123/od6/public/values/cokwr"},
        "updated": {"$t": "2014-02-19T10:11:12Z"},
        "title": {"type": "text", "$t": "2"},
        "content": {"type": "text", "$t": "world: 10"},
        "category": [{"scheme": "http://schemas.google.com/spreadsheets/2006", "term": "http://schemas.google.com/spreadsheets/2006#list"}],
        "gsx$hello": {"$t": "2"},
        "gsx$world": {"$t": "10"},
        "gsx$blank": {}
      }
    ]
  }
}`

const rowsXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns='http://www.w3.org/2005/Atom' xmlns:gsx='http://schemas.google.com/spreadsheets/2006/extended'>
  <title type='text'>Sheet1</title>
  <entry>
    <id>https://spreadsheets.google.com/feeds/list/abc123/od6/private/full/cokwr</id>
    <title type='text'>2</title>
    <gsx:hello>2</gsx:hello>
    <gsx:world>10</gsx:world>
    <gsx:blank/>
  </entry>
  <entry>
    <id>https://spreadsheets.google.com/feeds/list/abc123/od6/private/full/cpzh4</id>
    <title type='text'>3</title>
    <gsx:hello>3</gsx:hello>
    <gsx:world>20</gsx:world>
    <gsx:blank>x</gsx:blank>
  </entry>
</feed>`

const cellsJSON = `{
  "feed": {
    "title": {"$t": "Sheet1"},
    "entry": [
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/cells/abc123/od6/public/values/R1C1"},
        "title": {"$t": "A1"},
        "content": {"$t": "Hello,"},
        "gs$cell": {"row": "1", "col": "1", "$t": "Hello,"}
      },
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/cells/abc123/od6/public/values/R1C2"},
        "title": {"$t": "B1"},
        "content": {"$t": "World!"},
        "gs$cell": {"row": "1", "col": "2", "$t": "World!"}
      }
    ]
  }
}`

const cellsXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns='http://www.w3.org/2005/Atom' xmlns:gs='http://schemas.google.com/spreadsheets/2006'>
  <title type='text'>Sheet1</title>
  <entry>
    <title type='text'>A1</title>
    <gs:cell row='1' col='1' inputValue='Hello,'>Hello,</gs:cell>
  </entry>
  <entry>
    <title type='text'>B2</title>
    <gs:cell row='2' col='2' inputValue='=A1&amp;"!"'>Hello,!</gs:cell>
  </entry>
  <entry>
    <title type='text'>C3</title>
    <gs:cell row='3' col='3' inputValue=''/>
  </entry>
</feed>`

const emptyFeedJSON = `{"feed": {"title": {"$t": "Sheet1"}}}`
