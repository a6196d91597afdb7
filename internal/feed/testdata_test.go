package feed_test

const testRSSFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:content="http://purl.org/rss/1.0/modules/content/"
     xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"
     xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Test Blog</title>
    <link>https://example.com</link>
    <description>A test RSS feed</description>
    <item>
      <title>First post</title>
      <link>https://example.com/post/1</link>
      <description>Short summary</description>
      <content:encoded><![CDATA[<p>Full body</p>]]></content:encoded>
      <author>a@x.com; b@y.com</author>
      <category domain="https://example.com/tags">go</category>
      <guid isPermaLink="false">post-1</guid>
      <pubDate>Thu, 19 Feb 2026 08:00:00 +0800</pubDate>
      <enclosure url="https://example.com/1.mp3" length="1024" type="audio/mpeg"/>
      <itunes:duration>12:34</itunes:duration>
      <media:thumbnail url="https://example.com/1.jpg"/>
    </item>
    <item>
      <title>Second post</title>
      <pubDate>not a date</pubDate>
    </item>
  </channel>
</rss>`

const testAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Blog</title>
  <id>urn:feed</id>
  <updated>2026-02-19T09:00:00+08:00</updated>
  <entry>
    <title>Atom entry</title>
    <id>urn:entry:1</id>
    <link href="https://example.com/atom/1"/>
    <link rel="self" href="https://example.com/atom/1.xml"/>
    <summary>Atom summary</summary>
    <content type="html">&lt;p&gt;Atom body&lt;/p&gt;</content>
    <author><name>John Doe</name><email>john@example.com</email></author>
    <contributor><name>Jane Roe</name></contributor>
    <category term="robots" label="Robots"/>
    <updated>2026-02-19T09:00:00+08:00</updated>
    <published>2026-02-18T09:00:00+08:00</published>
  </entry>
</feed>`
